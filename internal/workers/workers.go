package workers

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates the given workers; nil entries are skipped.
func NewWorkers(ws ...Worker) *Workers {
	all := &Workers{}
	for _, w := range ws {
		if w != nil {
			all.workers = append(all.workers, w)
		}
	}
	return all
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
