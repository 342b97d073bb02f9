package domain

import (
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Workload 表示兼职工作量,只能取 10/20/30/40(占全职工作量的百分比)
type Workload int

const birthdateLayout = "2006-01-02T15:04:05.000Z"

// Birthdate 序列化为毫秒精度、带 UTC 标记的 ISO-8601 字符串
type Birthdate struct {
	time.Time
}

func (b Birthdate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.UTC().Format(birthdateLayout) + `"`), nil
}

func (b *Birthdate) UnmarshalJSON(data []byte) error {
	t, err := time.Parse(`"`+birthdateLayout+`"`, string(data))
	if err != nil {
		return err
	}

	b.Time = t
	return nil
}

type Employee struct {
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Gender    Gender    `json:"gender"`
	Birthdate Birthdate `json:"birthdate"`
	Workload  Workload  `json:"workload"`
}
