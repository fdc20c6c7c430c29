package reservation

import "time"

// ChargeableDays 计费天数：不足一天按一天计（向上取整）。
func ChargeableDays(start, end time.Time) int64 {
	d := end.Sub(start)
	if d <= 0 {
		return 1
	}
	days := int64(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// EstimateCost 预估费用：日租金 * 计划窗口的计费天数。
func EstimateCost(dailyRate int64, start, end time.Time) int64 {
	return dailyRate * ChargeableDays(start, end)
}

// SettleCost 结算费用：日租金 * 实际用车计费天数 + 里程单价 * 行驶里程。
func SettleCost(dailyRate, distanceRate int64, start, end time.Time, travelled int64) int64 {
	return dailyRate*ChargeableDays(start, end) + distanceRate*travelled
}
