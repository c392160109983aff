// Package binding 提供按名字注册、按延续风格链式调用的回调注册表。
//
// 一个绑定名对应一条回调链：Attach 按注册顺序追加回调，
// Launch 启动一次遍历，回调依次执行，每个回调通过事件上的
// Next 决定是否推进到下一个回调。不调用 Next 即中断链条，
// 这是唯一也是刻意保留的短路机制。
//
// 核心问题：
//
//	宿主对象需要在同一个名字下挂多段处理逻辑时，
//	- 执行顺序需要确定且可预期
//	- 每段逻辑要能决定"是否继续"而不是被强制跑完
//	- 载荷要能沿链条向后传递并允许中途修改
//	- 写错绑定名应该尽早暴露而不是静默吞掉
//
// 解决方案：
//
//	注册表将绑定名映射到有序回调链，Launch 时为本次遍历
//	生成独立游标，通过延续闭包逐跳传递；严格模式（默认）下
//	未注册的绑定名返回 UnknownBindingError。
//
// 用法：
//
//	reg := binding.New()
//	reg.Attach("click", func(ctx context.Context, ev *binding.Event) {
//		fmt.Println("A")
//		ev.Next(ctx)
//	}).Attach("click", func(ctx context.Context, ev *binding.Event) {
//		fmt.Println("B")
//		ev.Next(ctx)
//	})
//
//	_ = reg.Launch(ctx, "click") // 输出 A、B
//
// 载荷沿链条传递：
//
//	reg.Attach("custom", func(ctx context.Context, ev *binding.Event) {
//		payload, _ := binding.Arg[string](ev, 0)
//		fmt.Println(payload) // "Fruit"
//		ev.Next(ctx)
//	})
//	_ = reg.Launch(ctx, "custom", "Fruit")
//
// 包级函数 Attach、Launch 操作一个共享的默认注册表，
// 适合进程内全局使用的场景。
package binding
