package dashboard

import "github.com/iancoleman/strcase"

// Section 사이드바 탐색 메뉴의 항목입니다.
type Section struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Implemented bool   `json:"implemented"`
}

// ProductsSection 구현된 유일한 화면
const ProductsSection = "Products"

var sectionTitles = []string{
	"Dashboard",
	ProductsSection,
	"Orders",
	"Users",
	"Configuration",
	"Help Center",
}

// Sections 사이드바에 표시하는 메뉴 목록을 반환합니다. Products 외의 화면은 준비 중입니다.
func Sections() []Section {
	sections := make([]Section, 0, len(sectionTitles))
	for _, title := range sectionTitles {
		sections = append(sections, Section{
			Title:       title,
			Slug:        strcase.ToKebab(title),
			Implemented: title == ProductsSection,
		})
	}
	return sections
}

// FindSection slug에 해당하는 메뉴를 찾습니다.
func FindSection(slug string) (Section, bool) {
	for _, s := range Sections() {
		if s.Slug == slug {
			return s, true
		}
	}
	return Section{}, false
}
