// Package validator API 요청 DTO 검증에 사용하는 전역 validator와 한국어 에러 메시지 변환을 제공합니다.
//
// 필드명은 struct의 korean 태그 값을 사용하며, 태그가 없으면 Go 필드명을 사용합니다.
//
//	type SearchRequest struct {
//	    Term string `json:"term" validate:"max=100" korean:"검색어"`
//	}
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	once     sync.Once
)

// Get 초기화된 전역 validator 인스턴스를 반환합니다.
func Get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("korean"); name != "" {
				return name
			}
			return fld.Name
		})
	})

	return instance
}

// Struct 구조체의 validate 태그를 기준으로 검증합니다.
func Struct(s any) error {
	return Get().Struct(s)
}

// FormatValidationError validator 에러를 한국어 메시지로 변환합니다. 여러 에러가 있으면 첫 번째 에러만 사용합니다.
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err.Error()
	}

	return formatFieldError(validationErrors[0])
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	kind := fe.Kind()
	isString := kind == reflect.String
	isCollection := kind == reflect.Slice || kind == reflect.Array || kind == reflect.Map

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s는 필수입니다", field)
	case "min", "gte":
		if isString {
			return fmt.Sprintf("%s는 최소 %s자 이상이어야 합니다", field, param)
		}
		if fe.Tag() == "gte" && !isCollection {
			return fmt.Sprintf("%s는 %s 이상이어야 합니다", field, param)
		}
		return fmt.Sprintf("%s는 최소 %s 이상이어야 합니다", field, param)
	case "max", "lte":
		if isString {
			return fmt.Sprintf("%s는 최대 %s자까지 입력 가능합니다", field, param)
		}
		if fe.Tag() == "lte" && !isCollection {
			return fmt.Sprintf("%s는 %s 이하이어야 합니다", field, param)
		}
		return fmt.Sprintf("%s는 최대 %s까지 입력 가능합니다", field, param)
	case "len":
		if isCollection {
			return fmt.Sprintf("%s는 갯수가 %s개여야 합니다", field, param)
		}
		return fmt.Sprintf("%s는 %s자여야 합니다", field, param)
	case "email":
		return fmt.Sprintf("%s는 올바른 이메일 형식이어야 합니다", field)
	case "url", "http_url":
		return fmt.Sprintf("%s는 올바른 URL 형식이어야 합니다", field)
	case "uuid":
		return fmt.Sprintf("%s는 올바른 UUID 형식이어야 합니다", field)
	case "alphanum":
		return fmt.Sprintf("%s는 영문자와 숫자만 입력 가능합니다", field)
	case "oneof":
		return fmt.Sprintf("%s는 허용된 값 중 하나여야 합니다 [%s]", field, param)
	case "boolean":
		return fmt.Sprintf("%s는 true 또는 false 값이어야 합니다", field)
	}

	return fmt.Sprintf("%s 값 검증 실패 (%s)", field, fe.Tag())
}
