package engine

import (
	"dusk-rpg/pkg/api"
	"fmt"
	"time"
)

// Типы записей лога
const (
	LogInfo   = "INFO"
	LogCombat = "COMBAT"
	LogError  = "ERROR"
)

// AddLog добавляет запись в лог сессии
func (s *Session) AddLog(text, logType string) {
	s.logSeq++
	s.logs = append(s.logs, api.LogEntry{
		ID:        fmt.Sprintf("%s_%d", s.logPrefix(), s.logSeq),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	s.logger.WithField("log_type", logType).Debug(text)
}

// DrainLogs отдаёт накопленные записи и очищает буфер.
func (s *Session) DrainLogs() []api.LogEntry {
	out := s.logs
	s.logs = nil
	return out
}

func (s *Session) logPrefix() string {
	if s.Player == nil {
		return "session"
	}
	return s.Player.ID
}
