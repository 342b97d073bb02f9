package simulation

import "time"

// 年龄和时长之间统一按 365.25 天的年长换算
// 采样生日和统计年龄必须使用同一个换算,否则边界上的年龄会超出请求的范围
const yearLength = time.Duration(365.25 * 24 * float64(time.Hour))

// AgeOf 返回 birthdate 到 now 之间的年龄(带小数)
func AgeOf(birthdate, now time.Time) float64 {
	return float64(now.Sub(birthdate)) / float64(yearLength)
}

func ageToDuration(age float64) time.Duration {
	return time.Duration(age * float64(yearLength))
}
