package simulation

import (
	"math/rand"
	"time"

	"github.com/sysu-ecnc-dev/employee-simulator/backend/internal/domain"
)

// Simulator 是生成和统计的编排入口
// 每次调用使用一个独立的随机源和一个统一的 now 快照,调用之间没有共享状态,
// 因此可以在多个 goroutine 中并发调用
type Simulator struct {
	seed func() int64
	now  func() time.Time
}

func NewSimulator() *Simulator {
	return &Simulator{
		seed: func() int64 { return time.Now().UnixNano() },
		now:  time.Now,
	}
}

// BuildDataset 生成员工列表并计算统计,合并成一个完整的数据集
func (s *Simulator) BuildDataset(count int, minAge, maxAge float64) (*domain.EmployeeDataset, error) {
	rng := rand.New(rand.NewSource(s.seed()))
	now := s.now()

	employees, err := Generate(rng, now, count, minAge, maxAge)
	if err != nil {
		return nil, err
	}

	stats, err := Summarize(employees, now)
	if err != nil {
		return nil, err
	}

	return &domain.EmployeeDataset{
		Employees:  employees,
		Statistics: *stats,
	}, nil
}
