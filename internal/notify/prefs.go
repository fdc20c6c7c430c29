package notify

// Preferences 用户的通知偏好。零值表示全部接收。
type Preferences struct {
	Muted       bool        // 屏蔽全部通知
	MutedEvents []EventType // 屏蔽指定事件类型
}

// ShouldNotify 判断某事件是否应通知该用户。
// 纯函数：由编排层在发送前调用，状态机本身不感知通知偏好。
func ShouldNotify(p Preferences, t EventType) bool {
	if p.Muted {
		return false
	}
	for _, m := range p.MutedEvents {
		if m == t {
			return false
		}
	}
	return true
}
