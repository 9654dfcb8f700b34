package codegen

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Specification is the subset of the CloudFormation Resource Specification
// the generator reads.
type Specification struct {
	ResourceSpecificationVersion string                  `json:"ResourceSpecificationVersion"`
	PropertyTypes                map[string]PropertyType `json:"PropertyTypes"`
	ResourceTypes                map[string]ResourceType `json:"ResourceTypes"`
}

type ResourceType struct {
	Documentation string               `json:"Documentation"`
	Attributes    map[string]Attribute `json:"Attributes"`
	Properties    map[string]Property  `json:"Properties"`
}

type PropertyType struct {
	Documentation string              `json:"Documentation"`
	Properties    map[string]Property `json:"Properties"`
	// Set on the few property types that are a single primitive.
	PrimitiveType string `json:"PrimitiveType"`
}

type Property struct {
	Documentation     string `json:"Documentation"`
	PrimitiveType     string `json:"PrimitiveType"`
	PrimitiveItemType string `json:"PrimitiveItemType"`
	Type              string `json:"Type"`
	ItemType          string `json:"ItemType"`
	Required          bool   `json:"Required"`
	UpdateType        string `json:"UpdateType"`
	DuplicatesAllowed bool   `json:"DuplicatesAllowed"`
}

type Attribute struct {
	PrimitiveType     string `json:"PrimitiveType"`
	PrimitiveItemType string `json:"PrimitiveItemType"`
	Type              string `json:"Type"`
}

func ParseSpecification(data []byte) (*Specification, error) {
	var spec Specification
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse resource specification: %w", err)
	}
	if len(spec.ResourceTypes) == 0 {
		return nil, fmt.Errorf("resource specification has no ResourceTypes")
	}
	return &spec, nil
}

func LoadSpecification(path string) (*Specification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource specification: %w", err)
	}
	return ParseSpecification(data)
}

// Services lists the service names found in the specification, such as
// "SQS" for AWS::SQS::Queue.
func (s *Specification) Services() []string {
	seen := map[string]bool{}
	for typeName := range s.ResourceTypes {
		if service, _, ok := splitTypeName(typeName); ok {
			seen[service] = true
		}
	}
	return sortedKeys(seen)
}

// splitTypeName splits "AWS::SQS::Queue" into "SQS" and "Queue".
func splitTypeName(typeName string) (service, resource string, ok bool) {
	parts := strings.Split(typeName, "::")
	if len(parts) != 3 || parts[0] != "AWS" {
		return "", "", false
	}
	return parts[1], parts[2], true
}
