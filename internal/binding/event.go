package binding

import "context"

// Event 一次遍历中传递给回调的事件记录。
// 同一次遍历的所有回调共享同一个 Event 实例，
// 因此 Payload 的修改对链上后续回调可见。
type Event struct {
	name     string
	registry *Registry

	// Payload 调用方通过 Launch 传入的载荷值，按传入顺序排列。
	// 整条链共享同一个切片，回调可以修改元素向后传递累积状态。
	Payload []any

	// next 当前这一跳的延续，链条排空后为 nil。
	next func(ctx context.Context)
}

// Name 返回本次遍历对应的绑定名。
func (e *Event) Name() string {
	return e.name
}

// Registry 返回事件所属的注册表。
// 回调可以借此在同一个实例上继续 Attach 或 Launch。
func (e *Event) Registry() *Registry {
	return e.registry
}

// Next 推进到链上的下一个回调。
// 链条已排空或延续已经被调用过时为空操作，可以安全地重复调用。
// 传入的 ctx 会交给下一个回调，回调可借此向下游替换派生上下文。
func (e *Event) Next(ctx context.Context) {
	if e == nil || e.next == nil {
		return
	}
	e.next(ctx)
}
