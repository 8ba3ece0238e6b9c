package storage

import "fmt"

// Store - контракт key-value хранилища состояния.
// Значения - сериализованный JSON. Обе операции могут падать:
// движки обязаны деградировать, а не пробрасывать ошибку в UI.
type Store interface {
	// Get возвращает значение по ключу; ok=false если ключа нет
	Get(key string) (value string, ok bool, err error)
	// Set записывает значение по ключу
	Set(key, value string) error
}

// Логические ключи состояния. Все данные клиента
// скоупятся его идентификатором (tg:<chatID> или u:<uuid>).
const (
	keyProfile    = "profile"
	keyPlan       = "plan"
	keyStats      = "stats"
	keyCompleted  = "completed"
	keyReadTopics = "read_topics"
)

// ProfileKey - ключ анкеты клиента
func ProfileKey(userID string) string { return fmt.Sprintf("%s:%s", keyProfile, userID) }

// PlanKey - ключ недельного плана
func PlanKey(userID string) string { return fmt.Sprintf("%s:%s", keyPlan, userID) }

// StatsKey - ключ статистики геймификации
func StatsKey(userID string) string { return fmt.Sprintf("%s:%s", keyStats, userID) }

// CompletedKey - ключ журнала завершённых тренировок
func CompletedKey(userID string) string { return fmt.Sprintf("%s:%s", keyCompleted, userID) }

// ReadTopicsKey - ключ списка прочитанных статей
func ReadTopicsKey(userID string) string { return fmt.Sprintf("%s:%s", keyReadTopics, userID) }

// TelegramUserID возвращает идентификатор клиента бота в общем keyspace
func TelegramUserID(chatID int64) string { return fmt.Sprintf("tg:%d", chatID) }

// APIUserID возвращает идентификатор клиента HTTP API в общем keyspace
func APIUserID(uuid string) string { return fmt.Sprintf("u:%s", uuid) }
