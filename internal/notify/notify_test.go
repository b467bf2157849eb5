package notify_test

import (
	"defidesk/internal/notify"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Hub", func() {
	var hub *notify.Hub

	BeforeEach(func() {
		hub = notify.NewHub(zap.NewNop().Sugar())
	})

	It("assigns ids and retains published notifications", func() {
		id := hub.Publish(notify.Notification{Kind: notify.KindPending, Title: "Stake pending"})
		Expect(id).NotTo(BeEmpty())

		recent := hub.Recent()
		Expect(recent).To(HaveLen(1))
		Expect(recent[0].ID).To(Equal(id))
		Expect(recent[0].CreatedAt).NotTo(BeZero())
	})

	It("delivers notifications to subscribers", func() {
		ch, cancel := hub.Subscribe()
		defer cancel()

		hub.Publish(notify.Notification{Kind: notify.KindSuccess, Title: "Stake succeeded"})

		var received notify.Notification
		Eventually(ch).Should(Receive(&received))
		Expect(received.Kind).To(Equal(notify.KindSuccess))
	})

	It("marks dismissed notifications and re-broadcasts them", func() {
		id := hub.Publish(notify.Notification{Kind: notify.KindPending})

		ch, cancel := hub.Subscribe()
		defer cancel()

		hub.Dismiss(id)

		var received notify.Notification
		Eventually(ch).Should(Receive(&received))
		Expect(received.ID).To(Equal(id))
		Expect(received.Dismissed).To(BeTrue())

		Expect(hub.Recent()[0].Dismissed).To(BeTrue())
	})

	It("ignores dismissal of unknown ids", func() {
		Expect(func() { hub.Dismiss("nope") }).NotTo(Panic())
	})

	It("stops delivering after cancel", func() {
		ch, cancel := hub.Subscribe()
		cancel()

		hub.Publish(notify.Notification{Kind: notify.KindWarning})
		Eventually(ch).Should(BeClosed())
	})
})
