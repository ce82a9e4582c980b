package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cs329-classwork/jwt-pizza-service/internal/logging"
)

func TestRedact(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{
			name:     "json field",
			payload:  `{"password":"secret123"}`,
			expected: `{"password":"*****"}`,
		},
		{
			name:     "json field with spacing",
			payload:  `{"email":"a@jwt.com", "password" : "secret123"}`,
			expected: `{"email":"a@jwt.com", "password":"*****"}`,
		},
		{
			name:     "escaped body inside payload",
			payload:  `{"req":"{\"email\":\"a@jwt.com\",\"password\":\"secret123\"}"}`,
			expected: `{"req":"{\"email\":\"a@jwt.com\",\"password\":\"*****\"}"}`,
		},
		{
			name:     "double escaped",
			payload:  `\\\"password\\\":\\\"secret123\\\"`,
			expected: `\\\"password\\\":\\\"*****\\\"`,
		},
		{
			name:     "case insensitive key",
			payload:  `{"Password":"secret123"}`,
			expected: `{"Password":"*****"}`,
		},
		{
			name:     "form value",
			payload:  `email=a%40jwt.com&password=secret123&remember=1`,
			expected: `email=a%40jwt.com&password=*****&remember=1`,
		},
		{
			name:     "form value inside json string",
			payload:  `{"req":"user=a&password=secret123"}`,
			expected: `{"req":"user=a&password=*****"}`,
		},
		{
			name:     "escaped quote inside value",
			payload:  `{"password":"se\"cret123","email":"a@jwt.com"}`,
			expected: `{"password":"*****","email":"a@jwt.com"}`,
		},
		{
			name:     "escaped quote inside embedded body",
			payload:  `{"req":"{\"password\":\"se\\\"cret123\"}"}`,
			expected: `{"req":"{\"password\":\"*****\"}"}`,
		},
		{
			name:     "trailing escaped backslash",
			payload:  `{"password":"secret123\\","email":"a@jwt.com"}`,
			expected: `{"password":"*****","email":"a@jwt.com"}`,
		},
		{
			name:     "numeric value",
			payload:  `{"password":12345678,"email":"a@jwt.com"}`,
			expected: `{"password":"*****","email":"a@jwt.com"}`,
		},
		{
			name:     "numeric value inside embedded body",
			payload:  `{"req":"{\"password\":12345678}"}`,
			expected: `{"req":"{\"password\":\"*****\"}"}`,
		},
		{
			name:     "password key inside masked value",
			payload:  `{"password":"x\"password\":\"cret123"}`,
			expected: `{"password":"*****"}`,
		},
		{
			name:     "unterminated value",
			payload:  `{"password":"secret123`,
			expected: `{"password":"*****"`,
		},
		{
			name:     "spaced form value",
			payload:  `password = secret123&remember=1`,
			expected: `password=*****&remember=1`,
		},
		{
			name:     "nothing to mask",
			payload:  `{"email":"a@jwt.com","name":"pizza diner"}`,
			expected: `{"email":"a@jwt.com","name":"pizza diner"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logging.Redact(tt.payload)
			assert.Equal(t, tt.expected, got)
			assert.NotContains(t, got, "cret123")
			assert.NotContains(t, got, "12345678")
		})
	}
}
