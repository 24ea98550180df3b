// Package reactive связывает изменения входных компонентов страницы
// с пересчетом выходных компонентов через зарегистрированные обработчики.
package reactive

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownOutput - для выхода не зарегистрирован обработчик
	ErrUnknownOutput = errors.New("неизвестный выход")

	// ErrDuplicateOutput - выход уже связан с другим обработчиком
	ErrDuplicateOutput = errors.New("выход уже зарегистрирован")

	// ErrMissingInput - в состоянии нет значения для входа обработчика
	ErrMissingInput = errors.New("нет значения входа")
)

// Dependency указывает на свойство компонента страницы
type Dependency struct {
	ID       string `json:"id"`
	Property string `json:"property"`
}

// String возвращает запись вида "id.property"
func (d Dependency) String() string {
	return d.ID + "." + d.Property
}

// ParseDependency разбирает запись вида "id.property"
func ParseDependency(s string) (Dependency, error) {
	i := strings.LastIndex(s, ".")
	if i <= 0 || i == len(s)-1 {
		return Dependency{}, fmt.Errorf("некорректная ссылка на свойство: %q", s)
	}
	return Dependency{ID: s[:i], Property: s[i+1:]}, nil
}

// HandlerFunc получает значения входов в порядке их объявления
type HandlerFunc func(inputs []json.RawMessage) (any, error)

// Callback связывает один выход с его входами
type Callback struct {
	Output  Dependency
	Inputs  []Dependency
	Handler HandlerFunc
}

// Update - новое значение свойства выходного компонента
type Update struct {
	Output Dependency
	Value  any
}

// State хранит текущие значения входов (в формате JSON, как их прислал браузер)
type State map[Dependency]json.RawMessage

// Clone возвращает независимую копию состояния
func (s State) Clone() State {
	clone := make(State, len(s))
	for k, v := range s {
		clone[k] = v
	}
	return clone
}

// Controller сопоставляет изменения входов с обработчиками выходов.
// После регистрации обработчиков безопасен для одновременного чтения.
type Controller struct {
	callbacks []Callback
	byOutput  map[Dependency]int
	byInput   map[Dependency][]int
}

// NewController создает пустой контроллер
func NewController() *Controller {
	return &Controller{
		byOutput: make(map[Dependency]int),
		byInput:  make(map[Dependency][]int),
	}
}

// Register добавляет обработчик. У каждого выхода может быть только один обработчик.
func (c *Controller) Register(cb Callback) error {
	if cb.Handler == nil {
		return fmt.Errorf("обработчик для %s не задан", cb.Output)
	}
	if len(cb.Inputs) == 0 {
		return fmt.Errorf("у обработчика %s нет входов", cb.Output)
	}
	if _, exists := c.byOutput[cb.Output]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateOutput, cb.Output)
	}

	idx := len(c.callbacks)
	c.callbacks = append(c.callbacks, cb)
	c.byOutput[cb.Output] = idx
	for _, in := range cb.Inputs {
		c.byInput[in] = append(c.byInput[in], idx)
	}
	return nil
}

// Callbacks возвращает зарегистрированные обработчики в порядке регистрации
func (c *Controller) Callbacks() []Callback {
	out := make([]Callback, len(c.callbacks))
	copy(out, c.callbacks)
	return out
}

// IsInput сообщает, является ли свойство входом хотя бы одного обработчика
func (c *Controller) IsInput(dep Dependency) bool {
	_, ok := c.byInput[dep]
	return ok
}

// Resolve вычисляет значение одного выхода по текущему состоянию
func (c *Controller) Resolve(output Dependency, state State) (Update, error) {
	idx, ok := c.byOutput[output]
	if !ok {
		return Update{}, fmt.Errorf("%w: %s", ErrUnknownOutput, output)
	}
	return c.run(c.callbacks[idx], state)
}

// Dispatch пересчитывает все выходы, зависящие от изменившегося входа.
// Ошибки отдельных обработчиков не мешают остальным.
func (c *Controller) Dispatch(state State, changed Dependency) ([]Update, error) {
	var updates []Update
	var errs []error
	for _, idx := range c.byInput[changed] {
		update, err := c.run(c.callbacks[idx], state)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		updates = append(updates, update)
	}
	return updates, errors.Join(errs...)
}

// Initial вычисляет все выходы, как при первой отрисовке страницы
func (c *Controller) Initial(state State) ([]Update, error) {
	var updates []Update
	var errs []error
	for _, cb := range c.callbacks {
		update, err := c.run(cb, state)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		updates = append(updates, update)
	}
	return updates, errors.Join(errs...)
}

func (c *Controller) run(cb Callback, state State) (Update, error) {
	inputs := make([]json.RawMessage, len(cb.Inputs))
	for i, in := range cb.Inputs {
		value, ok := state[in]
		if !ok {
			return Update{}, fmt.Errorf("%w %s для %s", ErrMissingInput, in, cb.Output)
		}
		inputs[i] = value
	}

	value, err := cb.Handler(inputs)
	if err != nil {
		return Update{}, fmt.Errorf("обработчик %s: %w", cb.Output, err)
	}
	return Update{Output: cb.Output, Value: value}, nil
}

// CallbackInfo описывает связь выхода с входами для клиента
type CallbackInfo struct {
	Output string       `json:"output"`
	Inputs []Dependency `json:"inputs"`
}

// Describe возвращает описание всех обработчиков
func (c *Controller) Describe() []CallbackInfo {
	infos := make([]CallbackInfo, 0, len(c.callbacks))
	for _, cb := range c.callbacks {
		infos = append(infos, CallbackInfo{Output: cb.Output.String(), Inputs: cb.Inputs})
	}
	return infos
}
