package binding

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// Arg 按位置从事件载荷中取出期望类型的值。
//
// 优先直接类型断言；断言失败时退回 sonic 序列化往返转换，
// 以支持 map[string]any → 结构体、float64 → int 等兼容形状。
//
// 在回调中，可以使用以下代码获取载荷：
//
//	payload, err := binding.Arg[string](ev, 0)
//	if err != nil {
//		// 载荷缺失或类型不兼容
//		return
//	}
func Arg[T any](ev *Event, i int) (parsed T, err error) {
	if ev == nil {
		return parsed, fmt.Errorf("事件为空，无法提取载荷")
	}
	if i < 0 || i >= len(ev.Payload) {
		return parsed, fmt.Errorf("载荷索引越界: %d, 长度: %d", i, len(ev.Payload))
	}

	v := ev.Payload[i]

	// 快速路径：类型断言直接命中
	if t, ok := v.(T); ok {
		return t, nil
	}

	// 慢速路径：使用 sonic 库序列化往返进行形状转换
	data, err := sonic.Marshal(v)
	if err != nil {
		return parsed, fmt.Errorf("载荷序列化失败: %w", err)
	}
	if err = sonic.Unmarshal(data, &parsed); err != nil {
		return parsed, fmt.Errorf("载荷反序列化为 %T 失败: %w", parsed, err)
	}

	return parsed, nil
}
