package domain

// Statistics 是对一份员工列表的完整统计,每次调用重新计算,不保留任何状态
type Statistics struct {
	Total                int        `json:"total"`
	Workload10           int        `json:"workload10"`
	Workload20           int        `json:"workload20"`
	Workload30           int        `json:"workload30"`
	Workload40           int        `json:"workload40"`
	AverageAge           float64    `json:"averageAge"`
	MinAge               int        `json:"minAge"`
	MaxAge               int        `json:"maxAge"`
	MedianAge            int        `json:"medianAge"`
	MedianWorkload       float64    `json:"medianWorkload"`
	AverageWomenWorkload float64    `json:"averageWomenWorkload"`
	SortedByWorkload     []Employee `json:"sortedByWorkload"`
}

// EmployeeDataset 是生成接口的完整返回结果,统计字段直接平铺在顶层
type EmployeeDataset struct {
	Employees []Employee `json:"employees"`
	Statistics
}
