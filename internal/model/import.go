package model

import "time"

// Виды импорта.
const (
	ImportKindPrice   = "price"
	ImportKindNovelty = "novelty"
	ImportKindSpecial = "special"
	ImportKindDebts   = "debts"
)

// Кодировки фидов. Старые выгрузки поставщика идут в cp1251, новые —
// в utf-8 с BOM; кодировка задается при загрузке файла, а не угадывается.
const (
	EncodingCP1251  = "cp1251"
	EncodingUTF8BOM = "utf-8-sig"
)

// Import — запись о загруженном фиде. Создание записи ставит ровно одну
// асинхронную задачу импорта; сам файл обрабатывает фоновый воркер,
// а не HTTP-запрос.
type Import struct {
	ID           int       `json:"id" db:"id"`
	Kind         string    `json:"kind" db:"kind" validate:"required,oneof=price novelty special debts"`
	DepartmentID int       `json:"department_id" db:"department_id" validate:"required"`
	UserID       int       `json:"user_id" db:"user_id"`
	FilePath     string    `json:"file_path" db:"file_path"`
	Encoding     string    `json:"encoding" db:"encoding" validate:"required,oneof=cp1251 utf-8-sig"`
	ImportedAt   time.Time `json:"imported_at" db:"imported_at"`
}

// Debt — задолженность: номер документа, отмеченный актуальным в последнем
// фиде задолженностей департамента.
type Debt struct {
	ID           int    `json:"id" db:"id"`
	DepartmentID int    `json:"department_id" db:"department_id"`
	DocumentID   string `json:"document_id" db:"document_id"`
	IsActual     bool   `json:"is_actual" db:"is_actual"`
}
