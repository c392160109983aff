package binding

import (
	"context"

	"github.com/favbox/relay/internal/binding"
)

// Registry 绑定注册表类型别名。
//
// 指向内部包中的 Registry 结构体，将绑定名映射到有序回调链，
// 提供对外部用户友好的类型别名访问方式。
type Registry = binding.Registry

// Event 遍历事件类型别名。
//
// 指向内部包中的 Event 结构体，携带本次遍历的载荷与延续入口，
// 同一次遍历的所有回调共享同一个实例。
type Event = binding.Event

// Callback 绑定回调函数类型别名。
//
// 回调同步执行，通过 ev.Next(ctx) 推进链条；不调用 Next 即短路。
type Callback = binding.Callback

// Option 注册表构造选项类型别名。
type Option = binding.Option

// UnknownBindingError 未知绑定错误类型别名。
//
// 严格模式下 Launch 未注册的绑定名时返回，可通过 errors.As 匹配。
type UnknownBindingError = binding.UnknownBindingError

// New 创建空的绑定注册表。
// 默认处于严格模式，可通过 WithStrict(false) 切换为宽松模式。
func New(opts ...Option) *Registry {
	return binding.New(opts...)
}

// WithStrict 设置严格模式开关，默认开启。
func WithStrict(strict bool) Option {
	return binding.WithStrict(strict)
}

// defaultRegistry 包级共享的默认注册表，严格模式。
var defaultRegistry = binding.New()

// Default 返回包级共享的默认注册表。
func Default() *Registry {
	return defaultRegistry
}

// Attach 将回调追加到默认注册表指定绑定名的回调链尾部。
func Attach(name string, cb Callback) *Registry {
	return defaultRegistry.Attach(name, cb)
}

// Launch 在默认注册表上启动指定绑定的一次遍历。
func Launch(ctx context.Context, name string, payload ...any) error {
	return defaultRegistry.Launch(ctx, name, payload...)
}
