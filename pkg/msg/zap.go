package msg

import "go.uber.org/zap"

// NewZapHandler bridges messages into a zap logger: DBG messages log at
// Debug, everything else at Info, with the call site carried as fields.
func NewZapHandler(logger *zap.Logger) Handler {
	return func(m Message) {
		fields := []zap.Field{
			zap.String("function", m.Function),
			zap.String("file", m.File),
			zap.Int("line", m.Line),
		}
		if m.Tag == TagDebug {
			logger.Debug(m.Payload, fields...)
			return
		}
		logger.Info(m.Payload, fields...)
	}
}
