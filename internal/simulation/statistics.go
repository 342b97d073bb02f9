package simulation

import (
	"math"
	"slices"
	"time"

	"github.com/sysu-ecnc-dev/employee-simulator/backend/internal/domain"
)

// Summarize 计算员工列表的完整统计,所有年龄都基于同一个 now 快照推导
// 不会修改传入的列表:排序和中位数都在副本上进行
// sortedByWorkload 使用稳定排序,工作量相同的员工保持生成时的相对顺序
func Summarize(employees []domain.Employee, now time.Time) (*domain.Statistics, error) {
	if len(employees) == 0 {
		return nil, domain.ErrEmptyDataset
	}

	stats := &domain.Statistics{Total: len(employees)}

	ages := make([]float64, len(employees))
	for i, e := range employees {
		ages[i] = AgeOf(e.Birthdate.Time, now)

		switch e.Workload {
		case 10:
			stats.Workload10++
		case 20:
			stats.Workload20++
		case 30:
			stats.Workload30++
		case 40:
			stats.Workload40++
		}
	}

	sum := 0.0
	for _, age := range ages {
		sum += age
	}
	stats.AverageAge = round1(sum / float64(len(ages)))
	stats.MinAge = int(math.Floor(slices.Min(ages)))
	stats.MaxAge = int(math.Floor(slices.Max(ages)))
	stats.MedianAge = int(math.Floor(median(ages)))

	values := make([]float64, len(employees))
	womenSum, womenCount := 0.0, 0
	for i, e := range employees {
		values[i] = float64(e.Workload)
		if e.Gender == domain.GenderFemale {
			womenSum += float64(e.Workload)
			womenCount++
		}
	}
	stats.MedianWorkload = median(values)

	// 没有女性员工时平均值约定为 0,避免除以零
	if womenCount > 0 {
		stats.AverageWomenWorkload = round1(womenSum / float64(womenCount))
	}

	sorted := slices.Clone(employees)
	slices.SortStableFunc(sorted, func(a, b domain.Employee) int {
		return int(a.Workload - b.Workload)
	})
	stats.SortedByWorkload = sorted

	return stats, nil
}

// median 在副本上排序后取中位数,偶数长度取中间两个值的平均值
func median(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// round1 四舍五入到一位小数,0.05 向远离零的方向舍入
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
