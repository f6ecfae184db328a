package domain

type ResourceType string

const (
	Wood    ResourceType = "wood"
	Coal    ResourceType = "coal"
	Uranium ResourceType = "uranium"
)

var ErrUnknownResourceType = newBiz(CodeUnknownResourceType, "unknown resource type")

func ParseResourceType(s string) (ResourceType, error) {
	switch t := ResourceType(s); t {
	case Wood, Coal, Uranium:
		return t, nil
	default:
		return "", ErrUnknownResourceType.WithData("resource_type", s)
	}
}

// Resource 是格子上可采集的资源。Amount 不做校验，0 或负数也会原样保存。
type Resource struct {
	Type   ResourceType `json:"type"`
	Amount int          `json:"amount"`
}

func NewResource(t ResourceType, amount int) *Resource {
	return &Resource{Type: t, Amount: amount}
}
