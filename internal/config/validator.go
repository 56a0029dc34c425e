package config

import (
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/inventory-dashboard/internal/pkg/errors"
	"github.com/darkkaiser/inventory-dashboard/pkg/validation"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator 새로운 Validator 인스턴스를 생성하고 커스텀 유효성 검사 함수를 등록합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 Go 구조체 필드명 대신 JSON 이름(예: base_url)이 표시되도록 합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cors_origin", validateCORSOrigin); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'cors_origin' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}
	if err := v.RegisterValidation("base_url", validateBaseURL); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'base_url' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

func validateCORSOrigin(fl validator.FieldLevel) bool {
	return validation.ValidateCORSOrigin(fl.Field().String()) == nil
}

func validateBaseURL(fl validator.FieldLevel) bool {
	return validation.ValidateBaseURL(fl.Field().String()) == nil
}

// checkStruct 구조체의 유효성을 검사하고, 첫 번째 위반 항목을 사용자 친화적인 메시지로 변환합니다.
func checkStruct(s any, contextName string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 설정 검증 중 알 수 없는 오류가 발생했습니다", contextName))
	}

	fieldErr := validationErrors[0]
	switch fieldErr.Tag() {
	case "required":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s 항목은 필수입니다", contextName, fieldErr.Field()))
	case "required_if":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("TLS 서버 활성화 시 %s 항목은 필수입니다", fieldErr.Field()))
	case "file":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지정된 파일(%s)을 찾을 수 없습니다: '%v'", fieldErr.Field(), fieldErr.Value()))
	case "base_url":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port][/Path], 예: https://dummyjson.com)", fieldErr.Field(), fieldErr.Value()))
	case "cors_origin":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fieldErr.Value()))
	case "min", "max":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s 값이 허용 범위를 벗어났습니다: '%v' (조건: %s=%s)", contextName, fieldErr.Field(), fieldErr.Value(), fieldErr.Tag(), fieldErr.Param()))
	default:
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, fieldErr.Field(), fieldErr.Tag()))
	}
}
