package models

import "slices"

// Board is the complete task-tracking state: tasks, columns and the left-to-right column order.
// Its JSON form is the persisted snapshot.
type Board struct {
	Tasks       map[string]*Task   `json:"tasks"`
	Columns     map[string]*Column `json:"columns"`
	ColumnOrder []string           `json:"columnOrder"`
}

// Clone returns a deep copy that shares no maps, slices or pointers with b
func (b Board) Clone() Board {
	out := Board{
		Tasks:       make(map[string]*Task, len(b.Tasks)),
		Columns:     make(map[string]*Column, len(b.Columns)),
		ColumnOrder: slices.Clone(b.ColumnOrder),
	}
	for id, task := range b.Tasks {
		if task == nil {
			continue
		}
		t := *task
		out.Tasks[id] = &t
	}
	for id, col := range b.Columns {
		if col == nil {
			continue
		}
		c := *col
		c.TaskIDs = slices.Clone(col.TaskIDs)
		out.Columns[id] = &c
	}
	if out.ColumnOrder == nil {
		out.ColumnOrder = []string{}
	}
	return out
}
