package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiCyan  = "\x1b[36m"
	ansiGreen = "\x1b[32m"
)

// levelColors - цвет метки уровня в консоли
var levelColors = map[string]string{
	zerolog.LevelTraceValue: ansiCyan,
	zerolog.LevelDebugValue: ansiGreen,
	zerolog.LevelInfoValue:  "\x1b[34m",
	zerolog.LevelWarnValue:  "\x1b[33m",
	zerolog.LevelErrorValue: "\x1b[31m",
	zerolog.LevelFatalValue: "\x1b[31;1m",
	zerolog.LevelPanicValue: "\x1b[35m",
}

// NewLogger создает цветной консольный логгер; неизвестный уровень заменяется на info
func NewLogger(level string) *zerolog.Logger {
	log := initLogger(os.Stdout).Level(parseLevel(level))
	return &log
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func colorize(color string, v any) string {
	return fmt.Sprintf("%s%v%s", color, v, ansiReset)
}

func formatLevel(i any) string {
	level, _ := i.(string)
	color, ok := levelColors[level]
	if !ok {
		color = ansiReset
	}
	return colorize(color, fmt.Sprintf("| %-6s|", strings.ToUpper(level)))
}

func initLogger(out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DurationFieldInteger = true

	output := zerolog.ConsoleWriter{
		Out:              out,
		TimeFormat:       "2006-01-02 15:04:05 MST",
		FormatLevel:      formatLevel,
		FormatMessage:    func(i any) string { return colorize(ansiBold, i) },
		FormatFieldName:  func(i any) string { return colorize(ansiCyan, fmt.Sprintf("%v:", i)) },
		FormatFieldValue: func(i any) string { return colorize(ansiGreen, i) },
	}

	return zerolog.New(output).
		With().
		Timestamp().
		Logger()
}
