package catalog

// Catalog is a decoded, validated catalog. Treat it as read-only.
type Catalog struct {
	Datasets   []Dataset  `json:"datasets"`
	Properties []Property `json:"properties"`
}

// Dataset is one data file.
type Dataset struct {
	Key         string `json:"key"`
	File        string `json:"file"`
	Format      string `json:"format"`
	Description string `json:"description,omitempty"`
}

// Property declares one property family.
type Property struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Fields      []Field     `json:"fields"`
	Sources     []Source    `json:"sources"`
	Estimators  []Estimator `json:"estimators"`
}

// Field is a column read from each source row, with its unit.
type Field struct {
	Column string `json:"column"`
	Unit   string `json:"unit,omitempty"`
}

// Source binds a method name to a dataset.
type Source struct {
	Method  string `json:"method"`
	Dataset string `json:"dataset"`
}

// Estimator binds a method name to a registered estimator id.
type Estimator struct {
	Method string `json:"method"`
	ID     string `json:"id"`
}

// Dataset returns the dataset with the given key.
func (c *Catalog) Dataset(key string) (Dataset, bool) {
	for _, d := range c.Datasets {
		if d.Key == key {
			return d, true
		}
	}
	return Dataset{}, false
}

// Property returns the property with the given name.
func (c *Catalog) Property(name string) (Property, bool) {
	for _, p := range c.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// PropertyNames returns property names in declaration order.
func (c *Catalog) PropertyNames() []string {
	names := make([]string, 0, len(c.Properties))
	for _, p := range c.Properties {
		names = append(names, p.Name)
	}
	return names
}

// DatasetKeys returns the keys of datasets referenced by at least one
// property, in declaration order.
func (c *Catalog) DatasetKeys() []string {
	used := make(map[string]bool)
	for _, p := range c.Properties {
		for _, s := range p.Sources {
			used[s.Dataset] = true
		}
	}
	keys := []string{}
	for _, d := range c.Datasets {
		if used[d.Key] {
			keys = append(keys, d.Key)
		}
	}
	return keys
}

// Methods returns source methods followed by estimator methods.
func (p Property) Methods() []string {
	out := make([]string, 0, len(p.Sources)+len(p.Estimators))
	for _, s := range p.Sources {
		out = append(out, s.Method)
	}
	for _, e := range p.Estimators {
		out = append(out, e.Method)
	}
	return out
}

// Columns returns the field column names in order.
func (p Property) Columns() []string {
	out := make([]string, 0, len(p.Fields))
	for _, f := range p.Fields {
		out = append(out, f.Column)
	}
	return out
}
