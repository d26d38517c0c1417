package types

import "github.com/m-mizutani/goerr/v2"

// Category is a support category selectable from the ticket panel.
type Category string

const (
	CategoryBilling   Category = "billing"
	CategoryTechnical Category = "technical"
	CategorySales     Category = "sales"
	CategoryGeneral   Category = "general"
)

// Categories lists all selectable categories in panel display order.
func Categories() []Category {
	return []Category{
		CategoryBilling,
		CategoryTechnical,
		CategorySales,
		CategoryGeneral,
	}
}

var categoryLabels = map[Category]string{
	CategoryBilling:   "Billing Support",
	CategoryTechnical: "Technical Support",
	CategorySales:     "Sales Inquiry",
	CategoryGeneral:   "General Support",
}

var categoryDescriptions = map[Category]string{
	CategoryBilling:   "Questions about payments, invoices, and billing",
	CategoryTechnical: "Server issues, errors, and technical problems",
	CategorySales:     "Product questions and purchasing assistance",
	CategoryGeneral:   "Other questions and general assistance",
}

var categoryEmojis = map[Category]string{
	CategoryBilling:   "💳",
	CategoryTechnical: "🛠️",
	CategorySales:     "💼",
	CategoryGeneral:   "📝",
}

func (x Category) String() string {
	return string(x)
}

func (x Category) Label() string {
	return categoryLabels[x]
}

func (x Category) Description() string {
	return categoryDescriptions[x]
}

func (x Category) Emoji() string {
	return categoryEmojis[x]
}

// Title returns the category name with the first letter upper-cased, for
// human readable message bodies.
func (x Category) Title() string {
	if x == "" {
		return ""
	}
	s := string(x)
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}

func (x Category) Validate() error {
	if _, ok := categoryLabels[x]; !ok {
		return goerr.New("unknown ticket category", goerr.V("category", x))
	}
	return nil
}
