package safe

import "fmt"

// PanicErr 携带 panic 现场与堆栈跟踪的错误类型。
// TryLaunch 在回调 panic 时用它兜底，保留完整的崩溃上下文。
type PanicErr struct {
	// Info recover 捕获到的 panic 值
	Info any
	// Stack panic 发生时的堆栈跟踪
	Stack []byte
}

// Error 实现 error 接口，输出 panic 值与完整堆栈。
func (p *PanicErr) Error() string {
	return fmt.Sprintf("panic: %v\nstack: %s", p.Info, p.Stack)
}

// Unwrap 当 panic 值本身是 error 时支持错误链匹配。
func (p *PanicErr) Unwrap() error {
	if err, ok := p.Info.(error); ok {
		return err
	}
	return nil
}

// NewPanicErr 将 recover 捕获的信息与堆栈包装为 error。
func NewPanicErr(info any, stack []byte) error {
	return &PanicErr{
		Info:  info,
		Stack: stack,
	}
}
