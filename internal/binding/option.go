package binding

// options 注册表构造配置。
type options struct {
	strict bool
}

// Option 注册表构造选项函数类型。
type Option func(*options)

// WithStrict 设置严格模式开关。
// 严格模式（默认开启）下 Launch 未注册的绑定名返回 UnknownBindingError；
// 关闭后静默返回，不产生任何效果。
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}
