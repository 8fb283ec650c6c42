package model

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var ErrValidation = errors.New("validation failed")

// ValidationError - 어떤 필드가 어떤 규칙을 위반했는지
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid %s (%s)", ErrValidation, e.Field, e.Rule)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		// 공백을 제외한 글자 수 최소값 (comment.trim().length >= N)
		_ = v.RegisterValidation("trimmed_min", func(fl validator.FieldLevel) bool {
			n, err := strconv.Atoi(fl.Param())
			if err != nil {
				return false
			}
			return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
		})
		validate = v
	})
	return validate
}

// Validate - 제출 전 호출자 측 검증. 저장소(FeedbackService)는 검증하지 않는다.
func (in FeedbackInput) Validate() error {
	err := getValidator().Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &ValidationError{Field: fieldErrs[0].Field(), Rule: fieldErrs[0].Tag()}
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
