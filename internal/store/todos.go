package store

import "strings"

const TodosKey = "aura_todos"

// Todos owns the checklist. Items are addressed by position; text is fixed
// once added.
type Todos struct {
	c *Collection[Todo]
}

func newTodos(kv *KV) *Todos {
	return &Todos{c: newCollection[Todo](kv, TodosKey, nil)}
}

func (t *Todos) Load()        { t.c.Load() }
func (t *Todos) Len() int     { return t.c.Len() }
func (t *Todos) List() []Todo { return t.c.Items() }

// Open counts items not yet done.
func (t *Todos) Open() int {
	n := 0
	for _, item := range t.c.items {
		if !item.Done {
			n++
		}
	}
	return n
}

func (t *Todos) Add(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	t.c.Append(Todo{Text: text})
	return true
}

func (t *Todos) Toggle(i int) bool {
	return t.c.Update(i, func(item *Todo) { item.Done = !item.Done })
}

func (t *Todos) Delete(i int) bool {
	return t.c.RemoveAt(i)
}
