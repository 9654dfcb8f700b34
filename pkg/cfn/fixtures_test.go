package cfn

const widgetType = "Test::Service::Widget"

type widgetProps struct {
	Name    *string           `cfn:"Name,required"`
	Size    *int              `cfn:"Size"`
	Ratio   *float64          `cfn:"Ratio"`
	Enabled *bool             `cfn:"Enabled"`
	Format  *widgetFormat     `cfn:"Format"`
	Parts   []widgetPart      `cfn:"Parts"`
	Targets []string          `cfn:"Targets"`
	Labels  map[string]string `cfn:"Labels"`
	Policy  any               `cfn:"Policy"`
	Tags    []Tag             `cfn:"Tags"`
}

func (p *widgetProps) CFNType() string { return widgetType }

type widgetFormat struct {
	FormatType *string `cfn:"FormatType,required"`
	Delimiter  *string `cfn:"Delimiter"`
}

func (f *widgetFormat) CFNType() string { return widgetType + ".Format" }

type widgetPart struct {
	PartName *string `cfn:"PartName,required"`
	Count    *int    `cfn:"Count"`
}

func (p *widgetPart) CFNType() string { return widgetType + ".Part" }

type widget struct {
	Base
	Props *widgetProps
}

func newWidget(stack *Stack, id string, props *widgetProps) (*widget, error) {
	if props == nil {
		props = &widgetProps{}
	}
	w := &widget{Props: props}
	if err := stack.Add(id, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *widget) CFNType() string { return widgetType }

func (w *widget) Properties() any { return w.Props }

func init() {
	Register(widgetType, FactoryFor(newWidget))
}
