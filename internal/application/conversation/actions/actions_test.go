package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	cases := []Action{
		Cancel{},
		MainMenu{},
		NewTicket{},
		PickTopic{TopicID: 42},
		ChooseAnonymity{Anonymous: true},
		ChooseAnonymity{Anonymous: false},
		MyTickets{Page: 3},
		ContinueDialog{TicketID: 7},
		EndDialog{TicketID: 7},
		RateScore{TicketID: 7, Score: 5},
		SkipRatingComment{},
		FAQView{EntryID: 9},
		AdminDialogs{Page: 2},
		AdminReply{TicketID: 15},
		AdminReassignTo{TicketID: 15, AdminID: 123456789},
		AdminRemoveAdmin{UserID: 987654321},
		AdminRemoveTopic{TopicID: 4},
		SetLanguage{Lang: "ru"},
	}

	for _, a := range cases {
		payload := Encode(a)
		decoded, err := Decode(payload)
		require.NoError(t, err, "payload %q", payload)
		assert.Equal(t, a, decoded, "payload %q", payload)
	}
}

// The original dispatch matched string prefixes, so "reply_" style payloads
// could collide with "remove_". The typed decode must keep these distinct.
func TestDecode_SimilarKindsDoNotCollide(t *testing.T) {
	reply, err := Decode(Encode(AdminReply{TicketID: 1}))
	require.NoError(t, err)
	assert.IsType(t, AdminReply{}, reply)

	removeAdmin, err := Decode(Encode(AdminRemoveAdmin{UserID: 1}))
	require.NoError(t, err)
	assert.IsType(t, AdminRemoveAdmin{}, removeAdmin)

	reassign, err := Decode(Encode(AdminReassign{TicketID: 1}))
	require.NoError(t, err)
	assert.IsType(t, AdminReassign{}, reassign)

	reassignTo, err := Decode(Encode(AdminReassignTo{TicketID: 1, AdminID: 2}))
	require.NoError(t, err)
	assert.IsType(t, AdminReassignTo{}, reassignTo)
}

func TestDecode_Malformed(t *testing.T) {
	for _, payload := range []string{
		"",
		"bogus",
		"topic",
		"topic:abc",
		"rate:1",
		"rate:1:x",
		"adm_reassign_to:5",
		"view:-3",
	} {
		_, err := Decode(payload)
		require.Error(t, err, "payload %q must not decode", payload)
	}
}
