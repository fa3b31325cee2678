/*
Package salescoach is a dialogue-based sales training engine.

A trainee (the "manager") converses with a simulated client while a coach
scores every message against lexical heuristics and gives feedback. Training
scenarios are stage graphs: each module defines its stages, the metrics that
matter, and the rule for advancing. Sessions persist through a pluggable
store and survive restarts.

The zero-configuration path works out of the box: an in-memory store and a
deterministic persona. Production deployments plug in Redis persistence and a
generative backend:

	store := memory.NewStore()
	engine := salescoach.New(session.NewManager(store))

	res, _ := engine.Start(ctx, key, "master_path", nil)
	turn, _ := engine.Turn(ctx, key, "Здравствуйте! Расскажите, для кого песня?")
*/
package salescoach
