package models

// DayTally counts screening outcomes for one calendar day. It never holds
// numbers or fingerprints.
type DayTally struct {
	Calls       int `json:"calls"`
	Hits        int `json:"hits"`
	Clean       int `json:"clean"`
	Expired     int `json:"expired"`
	Degraded    int `json:"degraded"`
	Duplicates  int `json:"duplicates"`
	TaskFailure int `json:"task_failures"`
}

// Journal is the persisted form of the screening tallies keyed by "2006-01-02".
type Journal struct {
	Days map[string]*DayTally `json:"days"`
}
