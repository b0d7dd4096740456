// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting records votes and turns stored counters into results.

# Casting Votes

Engine.CastVote runs every step in one transaction:

 1. Load the question (ErrQuestionNotFound)
 2. Resolve the choice within that question (ErrNoSelection, ErrChoiceNotFound)
 3. Optionally check the voting window (ErrQuestionClosed)
 4. Insert the vote; the (user_id, question_id) unique index rejects a
    second vote (ErrAlreadyVoted)
 5. Increment the choice counter with votes = votes + 1

Any error rolls the transaction back, so counters only move together with
a new vote row.

	engine := voting.NewEngine(conn)
	engine.EnforceWindow = cfg.EnforceVotingWindow
	vote, err := engine.CastVote(ctx, voting.VoteRequest{
		VoterID:    userID,
		QuestionID: questionID,
		ChoiceID:   choiceID,
	})
	if errors.Is(err, voting.ErrAlreadyVoted) { ... }

# Voting Window

A question is open while pub_date <= now < expires_at (IsOpenForVoting).
IsExpired uses the strict expires_at < now comparison for display.
The window is only enforced on votes when Engine.EnforceWindow is set.

# Results

ComputeResults is pure: percentage = 100 * votes / total, and 0 for every
choice when nothing has been cast. Results are recomputed on each request
from the stored counters.
*/
package voting
