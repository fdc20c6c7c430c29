package reservation

import "time"

// Overlaps 判断两个预约时间窗是否冲突。
// 采用闭区间比较：上一单结束时刻恰好等于下一单开始时刻也算冲突，
// 连排预约之间不留边界歧义。repo 里的冲突查询与此保持同一定义。
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}
