package scheduler

import (
	"fmt"
	"math"

	"github.com/julianstephens/pomoplan/internal/models"
)

// breakRatio sizes the forced break relative to the pomodoro length.
const breakRatio = 0.4

// blockCursor tracks how much of a block earlier placements consumed.
type blockCursor struct {
	block  models.WeightedTimeBlock
	cursor int
}

type packer struct {
	week     [models.DaysPerWeek][]*blockCursor
	pomodoro int
	breakLen int
	maxRun   int
	ceiling  float64

	used     int
	sessions []models.ScheduledSession
	// runs counts each task's consecutive sessions in its current block.
	runs map[string]int
}

// RequiredSessions returns how many pomodoros a task needs.
func RequiredSessions(estimatedHours float64, pomodoroMinutes int) int {
	if estimatedHours <= 0 || pomodoroMinutes <= 0 {
		return 0
	}
	return int(math.Ceil(estimatedHours*60/float64(pomodoroMinutes) - 1e-9))
}

// BreakMinutes returns the break inserted after a full consecutive run.
func BreakMinutes(pomodoroMinutes int) int {
	return int(math.Round(float64(pomodoroMinutes) * breakRatio))
}

// PackSessions greedily places pomodoro sessions for tasks, already in
// priority order, into the week's weighted blocks. Days are scanned in order
// and each day's blocks in the order given. Nothing is placed once the next
// session would push used minutes past ceiling; unmet demand is left for the
// next rolling cycle.
func PackSessions(
	tasks []models.Task,
	week [models.DaysPerWeek][]models.WeightedTimeBlock,
	ceiling float64,
	pomodoroMinutes int,
	maxConsecutive int,
) models.ScheduleProposal {
	if maxConsecutive < 1 {
		maxConsecutive = 1
	}

	p := &packer{
		pomodoro: pomodoroMinutes,
		breakLen: BreakMinutes(pomodoroMinutes),
		maxRun:   maxConsecutive,
		ceiling:  ceiling,
		runs:     make(map[string]int),
	}
	for day, blocks := range week {
		for _, b := range blocks {
			p.week[day] = append(p.week[day], &blockCursor{block: b, cursor: b.StartMinutes})
		}
	}

	for _, task := range tasks {
		if !p.hasCapacity() {
			break
		}
		need := RequiredSessions(task.EstimatedHours, pomodoroMinutes)
		p.packTask(task, need)
	}

	return p.proposal()
}

func (p *packer) hasCapacity() bool {
	return float64(p.used+p.pomodoro) <= p.ceiling
}

func (p *packer) packTask(task models.Task, need int) {
	for day := range p.week {
		for _, bc := range p.week[day] {
			if need == 0 || !p.hasCapacity() {
				return
			}
			need = p.packBlock(task, bc, need)
		}
	}
}

// packBlock fills one block for a task and returns the sessions still needed.
func (p *packer) packBlock(task models.Task, bc *blockCursor, need int) int {
	p.runs[task.ID] = 0
	end := bc.block.EndMinutes

	for bc.cursor+p.pomodoro <= end && need > 0 && p.hasCapacity() {
		if p.runs[task.ID] >= p.maxRun {
			resume := bc.cursor + p.breakLen
			if resume+p.pomodoro > end {
				break
			}
			bc.cursor = resume
			p.runs[task.ID] = 0
		}

		p.sessions = append(p.sessions, models.ScheduledSession{
			ID:             fmt.Sprintf("session-%d", len(p.sessions)+1),
			TaskID:         task.ID,
			DayOfWeek:      bc.block.DayOfWeek,
			StartMinutes:   bc.cursor,
			EndMinutes:     bc.cursor + p.pomodoro,
			SequenceNumber: p.runs[task.ID],
		})
		p.runs[task.ID]++
		bc.cursor += p.pomodoro
		p.used += p.pomodoro
		need--
	}

	return need
}

func (p *packer) proposal() models.ScheduleProposal {
	utilization := 0.0
	if p.ceiling > 0 {
		utilization = float64(p.used) / p.ceiling
	}

	sessions := p.sessions
	if sessions == nil {
		sessions = []models.ScheduledSession{}
	}

	return models.ScheduleProposal{
		Sessions:          sessions,
		TotalPlannedHours: float64(p.used) / 60,
		UtilizationRate:   utilization,
		CapacityMinutes:   p.ceiling,
	}
}
