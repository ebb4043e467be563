package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Race represents a running race event.
type Race struct {
	bun.BaseModel `bun:"table:races,alias:rc"`

	ID       int       `bun:"id,pk,autoincrement" json:"id"`
	Name     string    `bun:"name,notnull,type:varchar(50)" json:"name"`
	Time     time.Time `bun:"time,notnull,default:current_timestamp" json:"time"`
	City     string    `bun:"city,notnull,type:varchar(20)" json:"city"`
	Distance int       `bun:"distance,notnull" json:"distance"`
	Website  string    `bun:"website,type:varchar(100)" json:"website,omitempty"`
}
