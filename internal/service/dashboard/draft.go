package dashboard

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/darkkaiser/inventory-dashboard/internal/service/catalog"
	"github.com/tidwall/gjson"
)

const (
	// PlaceholderThumbnail 썸네일 없이 생성된 상품에 표시할 이미지
	PlaceholderThumbnail = "https://via.placeholder.com/150"

	// DefaultBrand 브랜드 없이 생성된 상품에 표시할 브랜드명
	DefaultBrand = "Generic Brand"

	// DefaultOptimisticStock 재고가 0(또는 입력 없음)으로 생성된 상품에 표시할 재고 수량
	DefaultOptimisticStock = 10

	// DefaultAvailabilityStatus 상품 등록 폼의 판매 상태 기본값
	DefaultAvailabilityStatus = "In Stock"
)

// NumericInput 숫자 항목에 입력된 원본 텍스트입니다.
//
// JSON에서는 문자열과 숫자를 모두 받으며, 숫자는 지수 표기 없는 10진수 텍스트로 보관합니다. (1e3 -> "1000")
// 그 밖의 JSON 값(null, bool, 객체, 배열)은 빈 값이 되어 0으로 변환됩니다.
type NumericInput string

func (n *NumericInput) UnmarshalJSON(data []byte) error {
	v := gjson.ParseBytes(data)
	switch v.Type {
	case gjson.String:
		*n = NumericInput(v.Str)
	case gjson.Number:
		*n = NumericInput(strconv.FormatFloat(v.Num, 'f', -1, 64))
	default:
		*n = ""
	}
	return nil
}

// UnmarshalParam 폼 값과 쿼리 파라미터를 그대로 보관합니다. (echo.BindUnmarshaler)
func (n *NumericInput) UnmarshalParam(param string) error {
	*n = NumericInput(param)
	return nil
}

// Draft 상품 등록 폼에 입력된 원본 값입니다. 숫자 항목도 입력된 텍스트 그대로 보관합니다.
type Draft struct {
	Title              string       `json:"title" form:"title"`
	Description        string       `json:"description" form:"description"`
	Category           string       `json:"category" form:"category"`
	Brand              string       `json:"brand" form:"brand"`
	Price              NumericInput `json:"price" form:"price" swaggertype:"string"`
	DiscountPercentage NumericInput `json:"discountPercentage" form:"discountPercentage" swaggertype:"string"`
	Rating             NumericInput `json:"rating" form:"rating" swaggertype:"string"`
	Stock              NumericInput `json:"stock" form:"stock" swaggertype:"string"`
	AvailabilityStatus string       `json:"availabilityStatus" form:"availabilityStatus"`
	Thumbnail          string       `json:"thumbnail" form:"thumbnail"`
}

// toNewProduct 숫자 항목을 변환하여 생성 요청 본문을 만듭니다.
//
// 별도의 유효성 검사는 하지 않으며, 변환할 수 없는 값은 0이 됩니다.
func (d Draft) toNewProduct() catalog.NewProduct {
	status := d.AvailabilityStatus
	if status == "" {
		status = DefaultAvailabilityStatus
	}

	return catalog.NewProduct{
		Title:              d.Title,
		Description:        d.Description,
		Category:           d.Category,
		Brand:              d.Brand,
		Price:              parseFloatOrZero(string(d.Price)),
		DiscountPercentage: parseFloatOrZero(string(d.DiscountPercentage)),
		Rating:             parseFloatOrZero(string(d.Rating)),
		Stock:              parseIntOrZero(string(d.Stock)),
		AvailabilityStatus: status,
		Thumbnail:          d.Thumbnail,
	}
}

// optimisticProduct 생성 요청이 성공한 직후 목록에 바로 표시할 상품을 만듭니다.
func optimisticProduct(p catalog.NewProduct, id int) catalog.Product {
	product := catalog.Product{
		ID:                 id,
		Title:              p.Title,
		Description:        p.Description,
		Category:           p.Category,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		Rating:             p.Rating,
		Stock:              p.Stock,
		Brand:              p.Brand,
		AvailabilityStatus: p.AvailabilityStatus,
		Thumbnail:          p.Thumbnail,
	}

	if product.Thumbnail == "" {
		product.Thumbnail = PlaceholderThumbnail
	}
	if product.Brand == "" {
		product.Brand = DefaultBrand
	}
	if product.Stock == 0 {
		product.Stock = DefaultOptimisticStock
	}

	return product
}

var (
	floatPrefixRegexp = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
	intPrefixRegexp   = regexp.MustCompile(`^[+-]?\d+`)
	hexPrefixRegexp   = regexp.MustCompile(`^([+-]?)0[xX]([0-9a-fA-F]+)`)
)

// parseFloatOrZero 문자열 앞부분의 숫자를 실수로 변환합니다.
//
// 앞쪽 공백은 무시하고, 숫자로 해석할 수 있는 가장 긴 접두사만 사용합니다. ("12.5kg" -> 12.5)
// 숫자로 시작하지 않거나 유한한 값이 아니면 0을 반환합니다.
func parseFloatOrZero(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	prefix := floatPrefixRegexp.FindString(s)
	if prefix == "" {
		return 0
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}

// parseIntOrZero 문자열 앞부분의 숫자를 정수로 변환합니다.
//
// 앞쪽 공백은 무시하고, 소수점 이하나 숫자 뒤의 문자는 버립니다. ("12.7" -> 12, "5 pcs" -> 5)
// "0x"로 시작하면 16진수로 해석합니다. 변환할 수 없으면 0을 반환합니다.
func parseIntOrZero(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	if m := hexPrefixRegexp.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseInt(m[1]+m[2], 16, 64)
		if err != nil {
			return 0
		}
		return int(v)
	}

	prefix := intPrefixRegexp.FindString(s)
	if prefix == "" {
		return 0
	}

	v, err := strconv.Atoi(prefix)
	if err != nil {
		return 0
	}
	return v
}
