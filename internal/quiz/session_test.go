package quiz_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bootquiz/internal/quiz"
)

func fourQuestions() []quiz.Question {
	return []quiz.Question{
		{Prompt: "q1", Options: []string{"a", "b", "c", "d"}, Answer: 2},
		{Prompt: "q2", Options: []string{"a", "b", "c", "d"}, Answer: 1},
		{Prompt: "q3", Options: []string{"a", "b", "c", "d"}, Answer: 0},
		{Prompt: "q4", Options: []string{"a", "b", "c", "d"}, Answer: 1},
	}
}

func play(s *quiz.Session, answers ...int) {
	for _, a := range answers {
		Expect(s.Select(a)).To(BeTrue())
		Expect(s.Advance()).To(BeTrue())
	}
}

var _ = Describe("Session", func() {
	var s *quiz.Session

	BeforeEach(func() {
		var err error
		s, err = quiz.NewSession(fourQuestions())
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("construction", func() {
		It("starts on the first question, unlocked, with no score", func() {
			Expect(s.Phase()).To(Equal(quiz.PhaseActive))
			Expect(s.Index()).To(Equal(0))
			Expect(s.Score()).To(Equal(0))
			Expect(s.Locked()).To(BeFalse())
			Expect(s.Selected()).To(Equal(quiz.NoSelection))
			Expect(s.Progress()).To(BeNumerically("~", 0.25))
		})

		It("refuses an empty question set", func() {
			_, err := quiz.NewSession(nil)
			Expect(err).To(MatchError(quiz.ErrNoQuestions))
		})

		It("reports which question is invalid", func() {
			qs := fourQuestions()
			qs[2].Answer = 9
			_, err := quiz.NewSession(qs)
			Expect(err).To(MatchError(quiz.ErrAnswerRange))
			var qerr *quiz.QuestionError
			Expect(err).To(BeAssignableToTypeOf(qerr))
			Expect(err.(*quiz.QuestionError).Index).To(Equal(2))
		})

		It("rejects a pass fraction outside (0, 1]", func() {
			_, err := quiz.NewSession(fourQuestions(), quiz.WithPassFraction(0))
			Expect(err).To(MatchError(quiz.ErrPassFraction))
			_, err = quiz.NewSession(fourQuestions(), quiz.WithPassFraction(1.5))
			Expect(err).To(MatchError(quiz.ErrPassFraction))
		})

		It("is not affected by later edits to the caller's slice", func() {
			qs := fourQuestions()
			s, err := quiz.NewSession(qs)
			Expect(err).NotTo(HaveOccurred())
			qs[0].Options[2] = "changed"
			qs[0].Answer = 0
			q, ok := s.Current()
			Expect(ok).To(BeTrue())
			Expect(q.Options[2]).To(Equal("c"))
			Expect(q.Answer).To(Equal(2))
		})
	})

	Describe("Select", func() {
		It("locks and scores a correct answer", func() {
			Expect(s.Select(2)).To(BeTrue())
			Expect(s.Locked()).To(BeTrue())
			Expect(s.Score()).To(Equal(1))
		})

		It("locks without scoring a wrong answer", func() {
			Expect(s.Select(0)).To(BeTrue())
			Expect(s.Locked()).To(BeTrue())
			Expect(s.Score()).To(Equal(0))
		})

		It("ignores every call after the first on the same question", func() {
			Expect(s.Select(0)).To(BeTrue())
			for _, i := range []int{2, 2, 1, 0, 3} {
				Expect(s.Select(i)).To(BeFalse())
			}
			Expect(s.Score()).To(Equal(0))
			Expect(s.Selected()).To(Equal(0))
			Expect(s.Locked()).To(BeTrue())
		})

		DescribeTable("ignores out-of-range options without locking",
			func(i int) {
				Expect(s.Select(i)).To(BeFalse())
				Expect(s.Locked()).To(BeFalse())
				Expect(s.Score()).To(Equal(0))
			},
			Entry("negative", -1),
			Entry("one past the end", 4),
			Entry("far out", 1000),
		)
	})

	Describe("Advance", func() {
		It("is a no-op while unlocked", func() {
			Expect(s.Advance()).To(BeFalse())
			Expect(s.Index()).To(Equal(0))
			Expect(s.Phase()).To(Equal(quiz.PhaseActive))
		})

		It("loads the next question unlocked", func() {
			s.Select(1)
			Expect(s.Advance()).To(BeTrue())
			Expect(s.Index()).To(Equal(1))
			Expect(s.Locked()).To(BeFalse())
			Expect(s.Selected()).To(Equal(quiz.NoSelection))
			Expect(s.Progress()).To(BeNumerically("~", 0.5))
		})

		It("enters the result phase after the last question", func() {
			play(s, 0, 0, 0)
			Expect(s.Select(0)).To(BeTrue())
			Expect(s.Advance()).To(BeTrue())
			Expect(s.Phase()).To(Equal(quiz.PhaseResult))
			Expect(s.Index()).To(Equal(4))
			_, ok := s.Current()
			Expect(ok).To(BeFalse())
			Expect(s.Select(0)).To(BeFalse())
			Expect(s.Advance()).To(BeFalse())
		})
	})

	Describe("Result", func() {
		It("passes a perfect run", func() {
			play(s, 2, 1, 0, 1)
			r := s.Result()
			Expect(r.Score).To(Equal(4))
			Expect(r.Threshold).To(Equal(3))
			Expect(r.Verdict()).To(Equal(quiz.VerdictPass))
			Expect(r.ScoreLine()).To(Equal("4 / 4"))
			Expect(r.Ratio()).To(Equal(1.0))
		})

		It("fails when every answer is the first option", func() {
			play(s, 0, 0, 0, 0)
			r := s.Result()
			Expect(r.Score).To(Equal(1))
			Expect(r.Verdict()).To(Equal(quiz.VerdictFail))
			Expect(r.ScoreLine()).To(Equal("1 / 4"))
		})

		DescribeTable("applies the ceil(0.6 * n) threshold",
			func(answers []int, verdict quiz.Verdict) {
				play(s, answers...)
				Expect(s.Result().Verdict()).To(Equal(verdict))
			},
			Entry("score 4", []int{2, 1, 0, 1}, quiz.VerdictPass),
			Entry("score 3", []int{2, 1, 0, 0}, quiz.VerdictPass),
			Entry("score 2", []int{2, 1, 1, 0}, quiz.VerdictFail),
			Entry("score 0", []int{3, 3, 3, 3}, quiz.VerdictFail),
		)
	})

	Describe("Restart", func() {
		It("restores the freshly constructed state", func() {
			fresh := s.Snapshot()
			play(s, 2, 1, 0, 1)
			Expect(s.Phase()).To(Equal(quiz.PhaseResult))
			s.Restart()
			Expect(s.Snapshot()).To(Equal(fresh))
		})

		It("gives the same state when called twice", func() {
			play(s, 2, 1, 0, 1)
			s.Restart()
			once := s.Snapshot()
			s.Restart()
			Expect(s.Snapshot()).To(Equal(once))
		})
	})

	Describe("Snapshot", func() {
		It("marks nothing before an answer", func() {
			snap := s.Snapshot()
			Expect(snap.Selectable()).To(BeTrue())
			for i := range snap.Question.Options {
				Expect(snap.Mark(i)).To(Equal(quiz.MarkNone))
			}
		})

		It("marks the correct option and a wrong selection", func() {
			s.Select(3)
			snap := s.Snapshot()
			Expect(snap.Selectable()).To(BeFalse())
			Expect(snap.Mark(2)).To(Equal(quiz.MarkCorrect))
			Expect(snap.Mark(3)).To(Equal(quiz.MarkWrong))
			Expect(snap.Mark(0)).To(Equal(quiz.MarkNone))
		})

		It("marks only the correct option after a right answer", func() {
			s.Select(2)
			snap := s.Snapshot()
			Expect(snap.Mark(2)).To(Equal(quiz.MarkCorrect))
			for _, i := range []int{0, 1, 3} {
				Expect(snap.Mark(i)).To(Equal(quiz.MarkNone))
			}
		})
	})
})
