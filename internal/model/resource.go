package model

import "time"

type ResourceCondition string

const (
	ResourceConditionGood ResourceCondition = "good"
	ResourceConditionFair ResourceCondition = "fair"
	ResourceConditionPoor ResourceCondition = "poor"
)

func (c ResourceCondition) IsValid() bool {
	switch c {
	case ResourceConditionGood, ResourceConditionFair, ResourceConditionPoor:
		return true
	}
	return false
}

type ResourceStatus string

const (
	ResourceStatusAvailable   ResourceStatus = "available"
	ResourceStatusInUse       ResourceStatus = "in_use"
	ResourceStatusMaintenance ResourceStatus = "maintenance"
)

func (s ResourceStatus) IsValid() bool {
	switch s {
	case ResourceStatusAvailable, ResourceStatusInUse, ResourceStatusMaintenance:
		return true
	}
	return false
}

// Resource 場地設備資源；AvailableQuantity 應不大於 TotalQuantity
type Resource struct {
	ID                int               `json:"id" db:"id"`
	Name              string            `json:"name" db:"name"`
	Category          *string           `json:"category" db:"category"`
	TotalQuantity     int               `json:"total_quantity" db:"total_quantity"`
	AvailableQuantity int               `json:"available_quantity" db:"available_quantity"`
	Location          *string           `json:"location" db:"location"`
	Condition         ResourceCondition `json:"condition" db:"condition"`
	Status            ResourceStatus    `json:"status" db:"status"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
}
