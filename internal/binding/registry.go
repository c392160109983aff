package binding

/*
 * registry.go - 绑定注册表核心实现
 *
 * 核心组件：
 *   - Registry: 绑定名到回调链的注册表，持有 strict 配置
 *   - entry: 单个绑定记录，按注册顺序保存回调
 *   - Attach/Launch: 注册与链式调用两大操作
 *
 * 设计特点：
 *   - 注册顺序即执行顺序：回调按 Attach 先后依次执行
 *   - 本地游标：每次 Launch 对回调列表做快照，游标通过
 *     延续闭包传递，不在共享记录上保存遍历位置
 *   - 可重入：回调内部可以再次 Attach 或 Launch（同名或异名），
 *     各次遍历相互隔离
 *   - 协作式推进：回调不调用延续即终止本次遍历，没有超时和强制取消
 *
 * 与其他文件关系：
 *   - event.go 定义遍历中传递的事件记录与延续入口
 *   - error.go 定义严格模式下的未知绑定错误
 *   - option.go 定义构造选项
 */

import (
	"context"
	"runtime/debug"
	"slices"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/favbox/relay/internal/safe"
)

// Callback 绑定回调函数类型。
// 回调同步执行，通过 ev.Next(ctx) 推进到链上的下一个回调；
// 不调用 Next 则本次遍历在此终止。
type Callback func(ctx context.Context, ev *Event)

// entry 单个绑定记录。
// callbacks 只追加不修改，遍历期间使用的是它的快照。
type entry struct {
	callbacks []Callback
}

// Registry 绑定注册表。
// 将绑定名映射到回调链，并按首次注册顺序保留绑定名的排列。
// Attach 与 Launch 可以被多个 goroutine 并发调用；
// 回调本身在调用方的 goroutine 上同步执行，执行时不持有内部锁。
type Registry struct {
	mu sync.RWMutex

	// strict 严格模式开关，构造时固定。
	// 严格模式下 Launch 未注册的绑定名返回 UnknownBindingError，
	// 宽松模式下静默返回。
	strict bool

	// bindings 绑定名到记录的有序映射，保留首次注册顺序。
	bindings *orderedmap.OrderedMap[string, *entry]
}

// New 创建空的绑定注册表。
// 默认处于严格模式，可通过 WithStrict(false) 切换为宽松模式。
func New(opts ...Option) *Registry {
	o := &options{strict: true}
	for _, opt := range opts {
		opt(o)
	}

	return &Registry{
		strict:   o.strict,
		bindings: orderedmap.New[string, *entry](),
	}
}

// Attach 将回调追加到指定绑定名的回调链尾部。
// 绑定记录在首次注册时惰性创建；重复注册同一个回调是允许的。
// 返回注册表自身以支持链式调用：
//
//	reg.Attach("click", logIt).Attach("click", handleIt)
//
// 空绑定名或 nil 回调不产生任何效果。
func (r *Registry) Attach(name string, cb Callback) *Registry {
	if name == "" || cb == nil {
		return r
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.bindings.Get(name)
	if !ok {
		e = &entry{}
		r.bindings.Set(name, e)
	}
	e.callbacks = append(e.callbacks, cb)

	return r
}

// Launch 启动指定绑定的一次遍历。
//
// 回调按注册顺序逐个执行，每个回调通过事件上的 Next 推进到下一个；
// payload 切片原样贯穿整条链，回调对元素的修改对后续回调可见。
//
// 未注册的绑定名：严格模式返回 *UnknownBindingError，宽松模式返回 nil。
// 回调内的 panic 不会被捕获，直接传播到调用方；
// 需要兜底时使用 TryLaunch。
func (r *Registry) Launch(ctx context.Context, name string, payload ...any) error {
	r.mu.RLock()
	e, ok := r.bindings.Get(name)
	var cbs []Callback
	if ok {
		// 快照：遍历期间的 Attach 只影响之后的 Launch
		cbs = slices.Clone(e.callbacks)
	}
	r.mu.RUnlock()

	if !ok {
		if r.strict {
			return &UnknownBindingError{Name: name}
		}
		return nil
	}

	if len(cbs) == 0 {
		return nil
	}

	ev := &Event{
		name:     name,
		registry: r,
		Payload:  payload,
	}
	r.run(ctx, ev, cbs)

	return nil
}

// TryLaunch 与 Launch 行为一致，但会捕获回调内的 panic，
// 包装为携带堆栈的错误返回。
func (r *Registry) TryLaunch(ctx context.Context, name string, payload ...any) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = safe.NewPanicErr(e, debug.Stack())
		}
	}()

	return r.Launch(ctx, name, payload...)
}

// run 执行遍历中的一跳。
// pending 是本次遍历尚未执行的回调，游标只存在于延续闭包里，
// 因此同名的重入 Launch 互不干扰。
func (r *Registry) run(ctx context.Context, ev *Event, pending []Callback) {
	cb, rest := pending[0], pending[1:]

	if len(rest) == 0 {
		// 链条排空，之后的 Next 都是空操作
		ev.next = nil
	} else {
		advanced := false
		ev.next = func(ctx context.Context) {
			// 延续至多推进一次，重复调用是空操作
			if advanced {
				return
			}
			advanced = true
			r.run(ctx, ev, rest)
		}
	}

	cb(ctx, ev)
}

// Has 报告指定绑定名是否已注册过回调。
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.bindings.Get(name)
	return ok
}

// Names 返回所有已注册的绑定名，按首次注册顺序排列。
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, r.bindings.Len())
	for pair := r.bindings.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Len 返回指定绑定名下已注册的回调数量，未注册返回 0。
func (r *Registry) Len(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.bindings.Get(name)
	if !ok {
		return 0
	}
	return len(e.callbacks)
}
