package views

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/calendar-scheduler/internal/dto"
)

type TaskForm struct {
	Open  bool
	Title string
	Start time.Time
	End   time.Time
}

// TaskView is the owner's personal calendar.
type TaskView struct {
	backend  Backend
	notifier Notifier
	editor   *AvailabilityEditor
	log      zerolog.Logger

	UserID string
	Events []Event
	Form   TaskForm
}

// NewTaskView wires the view. editor may be nil when availability events are
// not shown alongside tasks.
func NewTaskView(backend Backend, notifier Notifier, editor *AvailabilityEditor, log zerolog.Logger, userID string) *TaskView {
	return &TaskView{
		backend:  backend,
		notifier: notifier,
		editor:   editor,
		log:      log,
		UserID:   userID,
	}
}

func (v *TaskView) Load(ctx context.Context) error {
	tasks, err := v.backend.ListTasks(ctx, v.UserID)
	if err != nil {
		v.log.Error().Err(err).Msg("error fetching tasks")
		return err
	}

	v.Events = make([]Event, 0, len(tasks))
	for _, t := range tasks {
		v.Events = append(v.Events, taskEvent(t))
	}
	return nil
}

// SelectSlot opens the creation form on exactly [start, end).
func (v *TaskView) SelectSlot(start, end time.Time) {
	v.Form.Start = start
	v.Form.End = end
	v.Form.Open = true
}

func (v *TaskView) SelectEvent(ev Event) {
	if ev.Kind == KindAvailability {
		if v.editor != nil {
			v.editor.SelectSlot(ev.Start, ev.End)
		}
		return
	}
	v.notifier.Notify(ev.Title)
}

func (v *TaskView) CloseForm() {
	v.Form.Open = false
}

// Submit creates the task. On failure the form keeps its contents.
func (v *TaskView) Submit(ctx context.Context) error {
	task, err := v.backend.CreateTask(ctx, v.UserID, dto.NewTask{
		Title: v.Form.Title,
		Start: v.Form.Start,
		End:   v.Form.End,
	})
	if err != nil {
		v.log.Error().Err(err).Msg("error creating task")
		return err
	}

	v.Events = append(v.Events, taskEvent(*task))
	v.Form = TaskForm{}
	return nil
}
