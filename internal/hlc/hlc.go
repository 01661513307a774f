// Package hlc реализует гибридные логические часы (Hybrid Logical Clock).
//
// HLC комбинирует физическое время (миллисекунды wall clock) с логическим
// счетчиком, что дает тотальный порядок событий между устройствами без
// синхронизации их физических часов:
//
//	Tick (локальное событие): если wall clock ушел вперед — берем его и
//	     сбрасываем счетчик; иначе инкрементируем счетчик.
//	Receive (получение удаленного timestamp): результат строго не меньше
//	     обоих входов и текущего wall clock.
//
// Все функции пакета чистые и тотальные над корректным входом. Некорректная
// упакованная строка — ошибка программиста: Unpack возвращает ошибку,
// MustUnpack паникует (fail fast, не runtime-условие для восстановления).
package hlc

import (
	"fmt"
	"strconv"
	"strings"
)

// Value представляет одно значение гибридных логических часов.
// Значения образуют тотальный порядок по (WallMillis, Counter, NodeID).
type Value struct {
	NodeID     string // NodeID уникальный идентификатор узла (устройства)
	WallMillis int64  // WallMillis физическое время в миллисекундах Unix
	Counter    int64  // Counter логический счетчик внутри одной миллисекунды
}

// New создает начальное значение часов для узла nodeID
// с текущим физическим временем и нулевым счетчиком.
func New(nodeID string, nowMillis int64) Value {
	return Value{
		WallMillis: nowMillis,
		Counter:    0,
		NodeID:     nodeID,
	}
}

// Tick возвращает следующее значение часов для локального события.
// Результат всегда строго больше local, даже при повторных вызовах внутри
// одной миллисекунды; при скачке wall clock вперед часы самокорректируются.
func Tick(local Value, nowMillis int64) Value {
	if nowMillis > local.WallMillis {
		return Value{WallMillis: nowMillis, Counter: 0, NodeID: local.NodeID}
	}
	return Value{
		WallMillis: local.WallMillis,
		Counter:    local.Counter + 1,
		NodeID:     local.NodeID,
	}
}

// Receive объединяет локальные часы с удаленным timestamp.
// Результат не меньше обоих входов, что сохраняет причинность между
// устройствами с рассинхронизированными физическими часами.
func Receive(local, remote Value, nowMillis int64) Value {
	maxWall := local.WallMillis
	if remote.WallMillis > maxWall {
		maxWall = remote.WallMillis
	}
	if nowMillis > maxWall {
		maxWall = nowMillis
	}

	var counter int64
	switch {
	case maxWall == local.WallMillis && maxWall == remote.WallMillis:
		// Обе стороны в одной миллисекунде - берем максимум счетчиков
		counter = maxInt64(local.Counter, remote.Counter) + 1
	case maxWall == local.WallMillis:
		counter = local.Counter + 1
	case maxWall == remote.WallMillis:
		counter = remote.Counter + 1
	default:
		// Wall clock обогнал обе стороны - счетчик сбрасывается
		counter = 0
	}

	return Value{WallMillis: maxWall, Counter: counter, NodeID: local.NodeID}
}

// Compare сравнивает два значения часов.
// Возвращает -1 если a < b, 0 если a == b, 1 если a > b.
func Compare(a, b Value) int {
	if a.WallMillis != b.WallMillis {
		if a.WallMillis < b.WallMillis {
			return -1
		}
		return 1
	}
	if a.Counter != b.Counter {
		if a.Counter < b.Counter {
			return -1
		}
		return 1
	}
	return strings.Compare(a.NodeID, b.NodeID)
}

// Before возвращает true, если v строго меньше other.
func (v Value) Before(other Value) bool {
	return Compare(v, other) < 0
}

// Equal возвращает true, если значения совпадают полностью.
func (v Value) Equal(other Value) bool {
	return Compare(v, other) == 0
}

// Pack сериализует значение в строку "<millis>:<counter>:<nodeID>".
// Числовые поля дополняются нулями, поэтому лексикографический порядок
// упакованных строк совпадает с порядком Compare.
func Pack(v Value) string {
	return fmt.Sprintf("%015d:%05d:%s", v.WallMillis, v.Counter, v.NodeID)
}

// Unpack разбирает строку, созданную Pack.
// Возвращает ошибку для некорректного входа.
func Unpack(packed string) (Value, error) {
	parts := strings.SplitN(packed, ":", 3)
	if len(parts) != 3 {
		return Value{}, fmt.Errorf("malformed hlc value %q: expected 3 fields", packed)
	}

	wall, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("malformed hlc millis %q: %w", parts[0], err)
	}
	counter, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("malformed hlc counter %q: %w", parts[1], err)
	}
	if parts[2] == "" {
		return Value{}, fmt.Errorf("malformed hlc value %q: empty node id", packed)
	}

	return Value{WallMillis: wall, Counter: counter, NodeID: parts[2]}, nil
}

// MustUnpack разбирает строку и паникует при ошибке.
// Используется там, где вход контролируется кодом (ошибка программиста).
func MustUnpack(packed string) Value {
	v, err := Unpack(packed)
	if err != nil {
		panic(err)
	}
	return v
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
