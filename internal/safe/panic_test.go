package safe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPanicErr(t *testing.T) {
	err := NewPanicErr("info", []byte("stack"))
	assert.Equal(t, "panic: info\nstack: stack", err.Error())
}

// TestPanicErr_Unwrap 测试 panic 值为 error 时的错误链匹配
func TestPanicErr_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewPanicErr(cause, []byte("stack"))
	assert.True(t, errors.Is(err, cause))

	// panic 值不是 error 时不参与错误链
	err = NewPanicErr("boom", []byte("stack"))
	assert.False(t, errors.Is(err, cause))
}
