package entity

// SessionState состояние сессии сканирования
type SessionState string

const (
	SessionIdle      SessionState = "idle"      // ещё не запускалась
	SessionAcquiring SessionState = "acquiring" // ждём поток с камеры
	SessionStreaming SessionState = "streaming" // кадры идут, декодер работает
	SessionStopped   SessionState = "stopped"   // остановлена пользователем
	SessionFailed    SessionState = "failed"    // ошибка камеры или отрисовки
)
