// Package log 애플리케이션 전역에서 사용하는 구조화 로깅 기능을 제공합니다.
//
// logrus를 기반으로 하며, 로그 레벨에 따라 메인/중요/상세 파일과 콘솔로 출력을 분배합니다.
// 모든 패키지는 WithComponent 계열 함수를 통해 component 필드를 일관되게 기록해야 합니다.
package log

import (
	"github.com/sirupsen/logrus"
)

// Level logrus.Level의 별칭입니다.
type Level = logrus.Level

const (
	PanicLevel Level = logrus.PanicLevel
	FatalLevel Level = logrus.FatalLevel
	ErrorLevel Level = logrus.ErrorLevel
	WarnLevel  Level = logrus.WarnLevel
	InfoLevel  Level = logrus.InfoLevel
	DebugLevel Level = logrus.DebugLevel
	TraceLevel Level = logrus.TraceLevel
)

// AllLevels logrus.AllLevels의 별칭입니다.
var AllLevels = logrus.AllLevels

type (
	// Fields 구조화 로그에 함께 기록할 키-값 쌍입니다.
	Fields = logrus.Fields

	// Entry 필드가 누적된 로그 항목입니다.
	Entry = logrus.Entry

	// Logger logrus.Logger의 별칭입니다.
	Logger = logrus.Logger

	// Formatter logrus.Formatter의 별칭입니다.
	Formatter = logrus.Formatter
)
