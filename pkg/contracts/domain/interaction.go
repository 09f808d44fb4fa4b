package domain

// InteractionEdge is an undirected email count between two employees.
type InteractionEdge struct {
	NodeA  EmployeeID `json:"node_a"`
	NodeB  EmployeeID `json:"node_b"`
	DeptA  Department `json:"dept_a"`
	DeptB  Department `json:"dept_b"`
	Weight int        `json:"weight"`
}

// IsInternalTo reports whether both endpoints belong to dept.
func (e InteractionEdge) IsInternalTo(dept Department) bool {
	return e.DeptA == dept && e.DeptB == dept
}

// InDegreeRecord counts the distinct same-department colleagues who sent
// mail to an employee. It is used as the employee's communication entropy.
type InDegreeRecord struct {
	EmployeeID          EmployeeID `json:"employee_id"`
	Department          Department `json:"department"`
	SameDeptSenderCount int        `json:"same_dept_sender_count"`
}

// ItemStyle carries per-item chart styling.
type ItemStyle struct {
	Color string `json:"color"`
}

// LineStyle carries per-link chart styling.
type LineStyle struct {
	Width     float64 `json:"width"`
	Opacity   float64 `json:"opacity"`
	Curveness float64 `json:"curveness"`
}

// GraphNode is one employee in a department communication graph.
type GraphNode struct {
	ID             EmployeeID `json:"id"`
	Name           string     `json:"name"`
	SymbolSize     float64    `json:"symbolSize"`
	Value          float64    `json:"value"`
	RawTotalWeight int        `json:"rawTotalWeight"`
	Category       int        `json:"category"`
	ItemStyle      ItemStyle  `json:"itemStyle"`
}

// GraphLink is an internal email edge.
type GraphLink struct {
	Source    EmployeeID `json:"source"`
	Target    EmployeeID `json:"target"`
	Value     int        `json:"value"`
	LineStyle LineStyle  `json:"lineStyle"`
}

// GraphCategory is a legend entry.
type GraphCategory struct {
	Name      string    `json:"name"`
	ItemStyle ItemStyle `json:"itemStyle"`
}

// GraphResult is a node-link graph for one department.
type GraphResult struct {
	Nodes      []GraphNode     `json:"nodes"`
	Links      []GraphLink     `json:"links"`
	Categories []GraphCategory `json:"categories"`
	MaxCount   int             `json:"maxCount"`
}
