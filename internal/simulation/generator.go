package simulation

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sysu-ecnc-dev/employee-simulator/backend/internal/domain"
)

// Generate 随机生成 count 个员工,每个员工在 now 时刻的年龄都落在 [minAge, maxAge] 内
// rng 由调用方显式传入,注入固定种子即可复现同一份生成结果
func Generate(rng *rand.Rand, now time.Time, count int, minAge, maxAge float64) ([]domain.Employee, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: count 不能为负数", domain.ErrInvalidInput)
	}
	if minAge < 0 {
		return nil, fmt.Errorf("%w: 年龄下限不能为负数", domain.ErrInvalidInput)
	}
	if minAge > maxAge {
		return nil, fmt.Errorf("%w: 年龄下限不能大于年龄上限", domain.ErrInvalidInput)
	}

	// 生日均匀采样于 [now - maxAge, now - minAge] 对应的时刻区间
	earliest := now.Add(-ageToDuration(maxAge))
	span := int64(ageToDuration(maxAge) - ageToDuration(minAge))

	employees := make([]domain.Employee, count)
	for i := range employees {
		gender := randomGender(rng)
		birthdate := earliest.Add(time.Duration(rng.Int63n(span + 1)))

		employees[i] = domain.Employee{
			Name:      randomName(rng, gender),
			Surname:   randomSurname(rng, gender),
			Gender:    gender,
			Birthdate: domain.Birthdate{Time: birthdate},
			Workload:  randomWorkload(rng),
		}
	}

	return employees, nil
}
