package aws

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// DataSource is a data block of the aws provider that stands in for a
// CloudFormation pseudo parameter.
type DataSource string

const (
	AvailabilityZones DataSource = "aws_availability_zones"
	CallerIdentity    DataSource = "aws_caller_identity"
	Partition         DataSource = "aws_partition"
	Region            DataSource = "aws_region"
)

// Name is the label the exporter gives every data source of the type.
func (d DataSource) Name() string {
	if d == AvailabilityZones {
		return "available"
	}
	return "current"
}

// Address returns the reference to an attribute of the data source, e.g.
// "data.aws_region.current.name".
func (d DataSource) Address(attribute string) string {
	return "data." + string(d) + "." + d.Name() + "." + attribute
}

// AllDataSources lists the data sources in the order they are written.
func AllDataSources() []DataSource {
	return []DataSource{AvailabilityZones, CallerIdentity, Partition, Region}
}

func GenerateDataSource(d DataSource) *hclwrite.Block {
	if d == AvailabilityZones {
		return GenerateAvailabilityZonesDataSource()
	}
	return hclwrite.NewBlock("data", []string{string(d), d.Name()})
}

func GenerateAvailabilityZonesDataSource() *hclwrite.Block {
	availabilityZoneBlock := hclwrite.NewBlock("data", []string{string(AvailabilityZones), AvailabilityZones.Name()})
	availabilityZoneBlock.Body().SetAttributeValue("state", cty.StringVal("available"))

	return availabilityZoneBlock
}
