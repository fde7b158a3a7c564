package models

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	DriverStatusAvailable  = "Available"
	DriverStatusOnDelivery = "On Delivery"
	DriverStatusOffDuty    = "Off Duty"
)

var driverStatuses = map[string]struct{}{
	DriverStatusAvailable:  {},
	DriverStatusOnDelivery: {},
	DriverStatusOffDuty:    {},
}

type DriverRecord struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	License  string `json:"license"`
	City     string `json:"city"`
	Status   string `json:"status"`
	JoinedAt string `json:"joinedAt"`
}

func (d *DriverRecord) Validate() error {
	if d.ID <= 0 {
		return errors.New("id must be a positive integer")
	}
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("name is required")
	}
	if _, ok := driverStatuses[d.Status]; !ok {
		return errors.Errorf("invalid driver status %q", d.Status)
	}
	return nil
}

const (
	VehicleStatusActive      = "Active"
	VehicleStatusMaintenance = "Maintenance"
	VehicleStatusRetired     = "Retired"
)

var vehicleStatuses = map[string]struct{}{
	VehicleStatusActive:      {},
	VehicleStatusMaintenance: {},
	VehicleStatusRetired:     {},
}

type VehicleRecord struct {
	ID       int    `json:"id"`
	Plate    string `json:"plate"`
	Model    string `json:"model"`
	Capacity string `json:"capacity"`
	Status   string `json:"status"`
}

func (v *VehicleRecord) Validate() error {
	if v.ID <= 0 {
		return errors.New("id must be a positive integer")
	}
	if strings.TrimSpace(v.Plate) == "" {
		return errors.New("plate is required")
	}
	if _, ok := vehicleStatuses[v.Status]; !ok {
		return errors.Errorf("invalid vehicle status %q", v.Status)
	}
	return nil
}

const (
	CustomerStatusActive   = "Active"
	CustomerStatusInactive = "Inactive"
)

var customerStatuses = map[string]struct{}{
	CustomerStatusActive:   {},
	CustomerStatusInactive: {},
}

type CustomerRecord struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	City    string `json:"city"`
	Address string `json:"address"`
	Status  string `json:"status"`
}

func (c *CustomerRecord) Validate() error {
	if c.ID <= 0 {
		return errors.New("id must be a positive integer")
	}
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	if _, ok := customerStatuses[c.Status]; !ok {
		return errors.Errorf("invalid customer status %q", c.Status)
	}
	return nil
}

func ValidateDrivers(records []DriverRecord) error {
	ids := make(map[int]struct{}, len(records))
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return errors.Wrapf(err, "driver [%d]", i)
		}
		if _, ok := ids[records[i].ID]; ok {
			return errors.Errorf("duplicate driver id %d", records[i].ID)
		}
		ids[records[i].ID] = struct{}{}
	}
	return nil
}

func ValidateVehicles(records []VehicleRecord) error {
	ids := make(map[int]struct{}, len(records))
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return errors.Wrapf(err, "vehicle [%d]", i)
		}
		if _, ok := ids[records[i].ID]; ok {
			return errors.Errorf("duplicate vehicle id %d", records[i].ID)
		}
		ids[records[i].ID] = struct{}{}
	}
	return nil
}

func ValidateCustomers(records []CustomerRecord) error {
	ids := make(map[int]struct{}, len(records))
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return errors.Wrapf(err, "customer [%d]", i)
		}
		if _, ok := ids[records[i].ID]; ok {
			return errors.Errorf("duplicate customer id %d", records[i].ID)
		}
		ids[records[i].ID] = struct{}{}
	}
	return nil
}
