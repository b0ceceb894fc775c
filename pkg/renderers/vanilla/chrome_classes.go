package vanilla

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassPage        ChromeClass = "sf-page"
	ClassHeader      ChromeClass = "sf-header"
	ClassProductList ChromeClass = "sf-product-list"
	ClassForm        ChromeClass = "sf-form"
	ClassFields      ChromeClass = "sf-form__fields"
	ClassActions     ChromeClass = "sf-actions"
	ClassErrors      ChromeClass = "sf-errors"
	ClassNotice      ChromeClass = "sf-notice"
)

// ChromeClasses overrides the class attribute of page chrome. Empty entries
// keep the defaults.
type ChromeClasses struct {
	Page        string
	Header      string
	ProductList string
	Form        string
	Fields      string
	Actions     string
	Errors      string
	Notice      string
}

func (c ChromeClasses) resolve() map[string]string {
	return map[string]string{
		"page":        classOr(c.Page, ClassPage),
		"header":      classOr(c.Header, ClassHeader),
		"productList": classOr(c.ProductList, ClassProductList),
		"form":        classOr(c.Form, ClassForm),
		"fields":      classOr(c.Fields, ClassFields),
		"actions":     classOr(c.Actions, ClassActions),
		"errors":      classOr(c.Errors, ClassErrors),
		"notice":      classOr(c.Notice, ClassNotice),
	}
}

func classOr(value string, fallback ChromeClass) string {
	if cleaned := sanitizeClassList(value); cleaned != "" {
		return cleaned
	}
	return string(fallback)
}
