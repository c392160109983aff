package binding

/*
 * trace.go - 模板化跟踪回调
 *
 * 核心组件：
 *   - FormatType: 跟踪模板的格式化类型（FString / GoTemplate / Jinja2）
 *   - NewTraceCallback: 创建渲染跟踪行并继续推进链条的回调
 *   - renderContent: 按格式化类型渲染模板内容
 *
 * 设计特点：
 *   - 三种模板方言统一入口，模板可引用 name 与 payload 两个变量
 *   - 渲染失败不写入也不中断链条，跟踪永远不影响业务回调
 *   - jinja 环境禁用涉及文件系统的关键字，只做纯字符串渲染
 */

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/template"

	"github.com/nikolalohinski/gonja"
	"github.com/nikolalohinski/gonja/config"
	"github.com/nikolalohinski/gonja/nodes"
	"github.com/nikolalohinski/gonja/parser"
	"github.com/slongfield/pyfmt"
)

// FormatType 跟踪模板的格式化类型。
type FormatType uint8

const (
	// FString Python 风格的字符串格式化 (PEP-3101)。
	// 由 pyfmt 库实现。
	FString FormatType = 0
	// GoTemplate Go 标准库的 text/template 格式化。
	GoTemplate FormatType = 1
	// Jinja2 Jinja2 模板格式化。
	// 由 gonja 库实现。
	Jinja2 FormatType = 2
)

// NewTraceCallback 创建渲染跟踪行的回调。
//
// 模板可引用两个变量：name（绑定名）与 payload（载荷切片）。
// 渲染结果写入 w 并换行，随后推进链条；渲染失败不写入、不中断。
//
// 使用示例：
//
//	reg.Attach("click", binding.NewTraceCallback(os.Stderr, "launch {name}", binding.FString))
func NewTraceCallback(w io.Writer, tmpl string, formatType FormatType) Callback {
	return func(ctx context.Context, ev *Event) {
		line, err := renderContent(tmpl, map[string]any{
			"name":    ev.Name(),
			"payload": ev.Payload,
		}, formatType)
		if err == nil {
			fmt.Fprintln(w, line)
		}
		ev.Next(ctx)
	}
}

// renderContent 根据格式化类型渲染模板内容。
func renderContent(content string, vs map[string]any, formatType FormatType) (string, error) {
	switch formatType {
	case FString:
		return pyfmt.Fmt(content, vs)
	case GoTemplate:
		parsedTmpl, err := template.New("template").
			Option("missingkey=error").
			Parse(content)
		if err != nil {
			return "", err
		}
		sb := new(strings.Builder)
		err = parsedTmpl.Execute(sb, vs)
		if err != nil {
			return "", err
		}
		return sb.String(), nil
	case Jinja2:
		env, err := getJinjaEnv()
		if err != nil {
			return "", err
		}
		tpl, err := env.FromString(content)
		if err != nil {
			return "", err
		}
		out, err := tpl.Execute(vs)
		if err != nil {
			return "", err
		}
		return out, nil
	default:
		return "", fmt.Errorf("unknown format type: %v", formatType)
	}
}

// jinjaEnvOnce 确保 jinja 环境只初始化一次。
var jinjaEnvOnce sync.Once

// jinjaEnv 定制的 jinja 环境实例。
var jinjaEnv *gonja.Environment

// jinjaEnvErr jinja 环境初始化错误。
var jinjaEnvErr error

// getJinjaEnv 获取定制的 jinja 环境。
// 禁用 include、extends、import、from 等涉及文件系统的关键字，
// 只保留纯字符串渲染能力。
func getJinjaEnv() (*gonja.Environment, error) {
	jinjaEnvOnce.Do(func() {
		jinjaEnv = gonja.NewEnvironment(config.DefaultConfig, gonja.DefaultLoader)
		for _, keyword := range []string{"include", "extends", "import", "from"} {
			if !jinjaEnv.Statements.Exists(keyword) {
				continue
			}
			kw := keyword
			err := jinjaEnv.Statements.Replace(kw, func(_ *parser.Parser, _ *parser.Parser) (nodes.Statement, error) {
				return nil, fmt.Errorf("keyword[%s] has been disabled", kw)
			})
			if err != nil {
				jinjaEnvErr = fmt.Errorf("init jinja env fail: %w", err)
				return
			}
		}
	})
	return jinjaEnv, jinjaEnvErr
}
