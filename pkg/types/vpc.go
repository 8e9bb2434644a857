package types

// VPC represents an AWS VPC
type VPC struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	CIDR      string `json:"cidr" yaml:"cidr"`
	State     string `json:"state" yaml:"state"`
	IsDefault bool   `json:"is_default" yaml:"is_default"`
	OwnerID   string `json:"owner_id" yaml:"owner_id"`
}

// Subnet represents an AWS VPC Subnet
type Subnet struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	VPCID        string `json:"vpc_id" yaml:"vpc_id"`
	CIDR         string `json:"cidr" yaml:"cidr"`
	AZ           string `json:"availability_zone" yaml:"availability_zone"`
	AZID         string `json:"availability_zone_id" yaml:"availability_zone_id"`
	AvailableIPs int    `json:"available_ips" yaml:"available_ips"`
	State        string `json:"state" yaml:"state"`
	Public       bool   `json:"public" yaml:"public"` // MapPublicIpOnLaunch
}

// AvailabilityZone represents a zone of the current region
type AvailabilityZone struct {
	Name   string `json:"name" yaml:"name"`
	ID     string `json:"id" yaml:"id"`
	State  string `json:"state" yaml:"state"`
	Region string `json:"region" yaml:"region"`
}

// Identity is the caller identity behind the loaded credentials
type Identity struct {
	Account string `json:"account" yaml:"account"`
	Arn     string `json:"arn" yaml:"arn"`
	UserID  string `json:"user_id" yaml:"user_id"`
}
