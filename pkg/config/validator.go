package config

import "fmt"

// validate performs validation on loaded configuration
func validate(cfg *Config) error {
	if err := validatePolicy(cfg.Policy); err != nil {
		return err
	}
	if err := validateQueue(cfg.Queue); err != nil {
		return err
	}
	if err := validateOutbox(cfg.Outbox); err != nil {
		return err
	}
	if err := validateLLM(cfg.LLM); err != nil {
		return err
	}
	switch cfg.Environment {
	case "development", "production":
	default:
		return NewValidationError("system", "environment",
			fmt.Errorf("%w: %q (want development or production)", ErrInvalidValue, cfg.Environment))
	}
	return nil
}

func validatePolicy(p *PolicyConfig) error {
	if p.MaxIterations < 1 {
		return NewValidationError("policy", "max_iterations",
			fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if p.MaxIterationsHardCap < p.MaxIterations {
		return NewValidationError("policy", "max_iterations_hard_cap",
			fmt.Errorf("%w: must be >= max_iterations", ErrInvalidValue))
	}
	if p.ApprovalThreshold < 0 || p.ApprovalThreshold > 10 {
		return NewValidationError("policy", "approval_threshold",
			fmt.Errorf("%w: must be within [0, 10]", ErrInvalidValue))
	}
	return nil
}

func validateQueue(q *QueueConfig) error {
	if q.WorkerCount < 1 {
		return NewValidationError("queue", "worker_count",
			fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if q.MaxConcurrentMissions < 1 {
		return NewValidationError("queue", "max_concurrent_missions",
			fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "poll_interval",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.MissionTimeout <= 0 {
		return NewValidationError("queue", "mission_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func validateOutbox(o *OutboxConfig) error {
	if o.PollInterval <= 0 {
		return NewValidationError("outbox", "poll_interval",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if o.BatchSize < 1 {
		return NewValidationError("outbox", "batch_size",
			fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	return nil
}

func validateLLM(l *LLMConfig) error {
	switch l.Provider {
	case "anthropic", "stub":
	default:
		return NewValidationError("llm", "provider",
			fmt.Errorf("%w: %q (want anthropic or stub)", ErrInvalidValue, l.Provider))
	}
	if l.Provider == "anthropic" && l.Model == "" {
		return NewValidationError("llm", "model",
			fmt.Errorf("%w: required for the anthropic provider", ErrInvalidValue))
	}
	return nil
}
