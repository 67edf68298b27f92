package logs

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

var logger = log.New(os.Stdout, "", 0)

var levelRank = map[string]int{
	"DEBUG": 0,
	"INFO":  1,
	"WARN":  2,
	"ERROR": 3,
	"FATAL": 4,
}

// Niveau minimum configurable via LOG_LEVEL (vide = tout logger)
var minLevel = levelRank[os.Getenv("LOG_LEVEL")]

// LogJSON écrit une ligne de log structurée JSON sur stdout
func LogJSON(level, message string, fields map[string]interface{}) {
	if levelRank[level] < minLevel {
		return
	}

	logEntry := map[string]interface{}{
		"severity": level, // "DEBUG", "INFO", "WARN", "ERROR" & "FATAL"
		"message":  message,
		"time":     time.Now().Format(time.RFC3339),
	}
	for k, v := range fields {
		logEntry[k] = v
	}
	jsonLog, _ := json.Marshal(logEntry)
	logger.Println(string(jsonLog))
}
