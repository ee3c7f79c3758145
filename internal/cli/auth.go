package cli

import "context"

func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	a.printResult(a.ctrl.Register(ctx, map[string]string{
		"email":            email,
		"password":         password,
		"confirm_password": confirm,
	}))
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	a.printResult(a.ctrl.Login(ctx, map[string]string{
		"email":    email,
		"password": password,
	}))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.printResult(a.ctrl.Logout(ctx))
	return nil
}
