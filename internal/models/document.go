package models

import "time"

// NodeType тип узла в дереве документа.
// Дерево состоит из узлов разного вида (tagged variant), каждый узел
// владеет списком детей произвольной вложенности.
type NodeType string

// Поддерживаемые типы узлов
const (
	NodeTypeNote       NodeType = "note"
	NodeTypeParagraph  NodeType = "paragraph"
	NodeTypeBlock      NodeType = "block"
	NodeTypeTask       NodeType = "task"
	NodeTypeCounter    NodeType = "counter"
	NodeTypeAttachment NodeType = "attachment"
)

// Attrs представляет атрибуты узла документа.
// Version — сигнал оптимистичной конкуренции: каждая принятая мутация
// сущности увеличивает его ровно на 1, потребители по нему отбрасывают
// устаревшие перезаписи.
type Attrs struct {
	Fields   map[string]any `json:"fields,omitempty"`    // Fields произвольные поля сущности (status, text, url, count, ...)
	EntityID string         `json:"entity_id,omitempty"` // EntityID идентификатор синхронизируемой сущности (UUID)
	Version  int64          `json:"version"`             // Version монотонно растущая версия сущности
	Order    int64          `json:"order"`               // Order порядок среди соседей (max соседей + 1 при вставке)
}

// Node представляет один узел дерева документа.
type Node struct {
	ID       string   `json:"id"`
	Type     NodeType `json:"type"`
	Attrs    Attrs    `json:"attrs"`
	Children []*Node  `json:"children,omitempty"`
}

// Document представляет документ (заметку) с деревом содержимого.
// Версия документа растет на 1 при любом изменении любого потомка.
type Document struct {
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	Root      *Node     `json:"root"`
	Version   int64     `json:"version"`
}

// Clone создает глубокую копию узла вместе со всеми детьми.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	clone := &Node{
		ID:   n.ID,
		Type: n.Type,
		Attrs: Attrs{
			EntityID: n.Attrs.EntityID,
			Version:  n.Attrs.Version,
			Order:    n.Attrs.Order,
		},
	}

	if n.Attrs.Fields != nil {
		clone.Attrs.Fields = make(map[string]any, len(n.Attrs.Fields))
		for k, v := range n.Attrs.Fields {
			clone.Attrs.Fields[k] = v
		}
	}

	if n.Children != nil {
		clone.Children = make([]*Node, 0, len(n.Children))
		for _, child := range n.Children {
			clone.Children = append(clone.Children, child.Clone())
		}
	}

	return clone
}

// FindEntity ищет узел с заданным entityID в поддереве n (включая сам n).
// Возвращает nil, если узел не найден.
func (n *Node) FindEntity(entityID string) *Node {
	if n == nil {
		return nil
	}
	if n.Attrs.EntityID == entityID {
		return n
	}
	for _, child := range n.Children {
		if found := child.FindEntity(entityID); found != nil {
			return found
		}
	}
	return nil
}

// Walk обходит поддерево n в префиксном порядке.
// Обход прерывается, если fn возвращает false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// RemoveEntity удаляет из поддерева n узел с заданным entityID.
// Возвращает true, если узел был найден и удален. Сам n не удаляется.
func (n *Node) RemoveEntity(entityID string) bool {
	if n == nil {
		return false
	}
	for i, child := range n.Children {
		if child.Attrs.EntityID == entityID {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return true
		}
		if child.RemoveEntity(entityID) {
			return true
		}
	}
	return false
}

// MaxChildOrder возвращает максимальный Order среди прямых детей узла.
// Для узла без детей возвращает 0, так что первая вставка получает Order 1.
func (n *Node) MaxChildOrder() int64 {
	var max int64
	for _, child := range n.Children {
		if child.Attrs.Order > max {
			max = child.Attrs.Order
		}
	}
	return max
}

// Clone создает глубокую копию документа.
// Мутаторы никогда не изменяют документ на месте: вычисляется полностью
// новое состояние и сохраняется одной транзакцией.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	return &Document{
		ID:        d.ID,
		Version:   d.Version,
		UpdatedAt: d.UpdatedAt,
		Root:      d.Root.Clone(),
	}
}

// FindEntity ищет узел с заданным entityID в дереве документа.
func (d *Document) FindEntity(entityID string) *Node {
	if d == nil {
		return nil
	}
	return d.Root.FindEntity(entityID)
}

// EntityIDs возвращает идентификаторы всех синхронизируемых сущностей
// документа. Используется для поддержания плоского индекса entity -> document.
func (d *Document) EntityIDs() []string {
	var ids []string
	if d == nil {
		return ids
	}
	d.Root.Walk(func(n *Node) bool {
		if n.Attrs.EntityID != "" {
			ids = append(ids, n.Attrs.EntityID)
		}
		return true
	})
	return ids
}
