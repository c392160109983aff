package binding

import "fmt"

// UnknownBindingError 未知绑定错误。
// 严格模式下 Launch 一个从未 Attach 过的绑定名时返回，
// 携带出错的绑定名，可通过 errors.As 匹配。
type UnknownBindingError struct {
	// Name 未注册的绑定名
	Name string
}

// Error 实现 error 接口，错误信息中包含绑定名。
func (e *UnknownBindingError) Error() string {
	return fmt.Sprintf("binding %q has no callbacks attached", e.Name)
}
