package binding

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTraceCallback_FString 测试 pyfmt 风格的跟踪模板
func TestTraceCallback_FString(t *testing.T) {
	buf := new(bytes.Buffer)
	reg := New()
	reg.Attach("click", NewTraceCallback(buf, "launch {name}", FString))

	require.NoError(t, reg.Launch(context.Background(), "click"))
	assert.Equal(t, "launch click\n", buf.String())
}

// TestTraceCallback_GoTemplate 测试 text/template 风格的跟踪模板
// 验证点：模板可引用绑定名与载荷元素
func TestTraceCallback_GoTemplate(t *testing.T) {
	buf := new(bytes.Buffer)
	reg := New()
	reg.Attach("click", NewTraceCallback(buf, "launch {{.name}} with {{index .payload 0}}", GoTemplate))

	require.NoError(t, reg.Launch(context.Background(), "click", "Fruit"))
	assert.Equal(t, "launch click with Fruit\n", buf.String())
}

// TestTraceCallback_Jinja2 测试 gonja 风格的跟踪模板
func TestTraceCallback_Jinja2(t *testing.T) {
	buf := new(bytes.Buffer)
	reg := New()
	reg.Attach("click", NewTraceCallback(buf, "launch {{ name }}", Jinja2))

	require.NoError(t, reg.Launch(context.Background(), "click"))
	assert.Equal(t, "launch click\n", buf.String())
}

// TestTraceCallback_RenderFailure 测试渲染失败时的行为
// 验证点：失败不写入任何内容，链条仍然继续推进
func TestTraceCallback_RenderFailure(t *testing.T) {
	buf := new(bytes.Buffer)
	reg := New()
	ran := false

	// missingkey=error 使引用不存在的变量渲染失败
	reg.Attach("click", NewTraceCallback(buf, "{{.nope}}", GoTemplate))
	reg.Attach("click", func(ctx context.Context, ev *Event) {
		ran = true
		ev.Next(ctx)
	})

	require.NoError(t, reg.Launch(context.Background(), "click"))
	assert.Empty(t, buf.String())
	assert.True(t, ran)
}

// TestRenderContent_UnknownFormat 测试未知格式化类型的报错
func TestRenderContent_UnknownFormat(t *testing.T) {
	_, err := renderContent("x", nil, FormatType(9))
	assert.Error(t, err)
}
